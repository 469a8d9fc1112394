package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"notebook-dashboard-be/internal/bootstrap"
	"notebook-dashboard-be/internal/config"
	"notebook-dashboard-be/internal/dto"
	"notebook-dashboard-be/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testNotebookJSON = `{
	"metadata": {"title": "DAI Peg Stability", "description": "How DAI holds its peg"},
	"nbformat": 4,
	"cells": [{"cell_type": "markdown", "source": "# Peg mechanics"}]
}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA case_sensitive_like = ON").Error)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Notebook{}))

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "http://localhost:5001",
			UploadDir:          t.TempDir(),
			ViewsDir:           "../../web/views",
			StaticDir:          "../../web/static",
			BodyLimit:          16 * 1024 * 1024,
		},
		Session: config.SessionConfig{TTL: time.Hour},
	}

	container := bootstrap.NewContainer(db, cfg)
	return New(cfg, container).GetApp()
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}

func registerAndLogin(t *testing.T, app *fiber.App, username string) *http.Cookie {
	t.Helper()

	resp := postForm(t, app, "/register", url.Values{
		"username": {username},
		"email":    {username + "@example.com"},
		"password": {"secret1"},
	}, nil)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/login?registered=1", resp.Header.Get("Location"))

	resp = postForm(t, app, "/login", url.Values{
		"username": {username},
		"password": {"secret1"},
	}, nil)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	return cookie
}

func uploadNotebook(t *testing.T, app *fiber.App, cookie *http.Cookie, filename, tags string, public bool) *http.Response {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("notebook", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(testNotebookJSON))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("tags", tags))
	if public {
		require.NoError(t, w.WriteField("is_public", "on"))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/upload", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(cookie)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestDashboardRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/dashboard", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestWrongPasswordRejected(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "alice")

	resp := postForm(t, app, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong-password"},
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))
}

func TestUploadAndPublicListing(t *testing.T) {
	app := newTestApp(t)
	cookie := registerAndLogin(t, app, "alice")

	resp := uploadNotebook(t, app, cookie, "analysis.ipynb", "dai,stablecoin", true)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp = get(t, app, "/api/notebooks", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summaries []dto.NotebookSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "DAI Peg Stability", summaries[0].Title)
	assert.Equal(t, "alice", summaries[0].Author)
	assert.Equal(t, []string{"dai", "stablecoin"}, summaries[0].Tags)

	// The detail page renders the markdown cell and is public.
	resp = get(t, app, "/notebook/1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Peg mechanics")
}

func TestPrivateNotebookHiddenFromOthers(t *testing.T) {
	app := newTestApp(t)
	cookie := registerAndLogin(t, app, "alice")

	resp := uploadNotebook(t, app, cookie, "draft.ipynb", "", false)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	// Not in the public API listing.
	resp = get(t, app, "/api/notebooks", nil)
	var summaries []dto.NotebookSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	assert.Empty(t, summaries)

	// Anonymous detail access is forbidden, the owner's is not.
	resp = get(t, app, "/notebook/1", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = get(t, app, "/notebook/1", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploadRejectsWrongFileType(t *testing.T) {
	app := newTestApp(t)
	cookie := registerAndLogin(t, app, "alice")

	resp := uploadNotebook(t, app, cookie, "report.txt", "", true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	cookie := registerAndLogin(t, app, "alice")

	resp := get(t, app, "/logout", cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = get(t, app, "/dashboard", cookie)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
