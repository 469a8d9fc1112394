package serverutils

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// newErrorApp wires the handler without a views engine, so page routes
// exercise the plain-text fallback.
func newErrorApp(fail error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nopLogger{})})
	handler := func(ctx *fiber.Ctx) error { return fail }
	app.Post("/upload", handler)
	app.Post("/api/upload", handler)
	return app
}

func testRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestErrorHandlerBodyLimit(t *testing.T) {
	// The body cap surfaces as this fiber error before any handler runs;
	// the handler must map it to 413 with the size message.
	app := newErrorApp(fiber.ErrRequestEntityTooLarge)

	resp := testRequest(t, app, "/upload")
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Upload too large (16 MB maximum)", string(body))
}

func TestErrorHandlerBodyLimitOnAPIRoute(t *testing.T) {
	app := newErrorApp(fiber.ErrRequestEntityTooLarge)

	resp := testRequest(t, app, "/api/upload")
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	var envelope BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Upload too large (16 MB maximum)", envelope.Message)
}

func TestErrorHandlerAppError(t *testing.T) {
	app := newErrorApp(NewAppError(ErrCodeAccessDenied, "Access denied"))

	resp := testRequest(t, app, "/upload")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Access denied", string(body))
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := newErrorApp(io.ErrUnexpectedEOF)

	resp := testRequest(t, app, "/upload")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Something went wrong", string(body))
}
