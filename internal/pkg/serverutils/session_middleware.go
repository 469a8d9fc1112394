package serverutils

import (
	"strings"

	"notebook-dashboard-be/internal/repository/memory"
	"notebook-dashboard-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

const SessionCookieName = "session_id"

const (
	localsSession  = "session"
	localsUserID   = "user_id"
	localsUsername = "username"
)

// SessionMiddleware resolves the session cookie into request-scoped
// identity. Anonymous requests pass through untouched.
func SessionMiddleware(sessions *memory.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies(SessionCookieName)
		if token != "" {
			if sess, found := sessions.Get(token); found {
				ctx.Locals(localsSession, sess)
				ctx.Locals(localsUserID, sess.UserID)
				ctx.Locals(localsUsername, sess.Username)
			}
		}
		return ctx.Next()
	}
}

// RequireAuth gates a route on an authenticated session. Pages redirect to
// the login form; API routes get a 401 envelope.
func RequireAuth() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Locals(localsUserID) == nil {
			if strings.HasPrefix(ctx.Path(), "/api") {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Login required"))
			}
			return ctx.Redirect("/login", fiber.StatusSeeOther)
		}
		return ctx.Next()
	}
}

// CurrentSession returns the resolved session, if any.
func CurrentSession(ctx *fiber.Ctx) (*store.Session, bool) {
	sess, ok := ctx.Locals(localsSession).(*store.Session)
	return sess, ok
}

// CurrentUserID returns the authenticated user id, if any.
func CurrentUserID(ctx *fiber.Ctx) (uint, bool) {
	id, ok := ctx.Locals(localsUserID).(uint)
	return id, ok
}

// CurrentUsername returns the authenticated username or "".
func CurrentUsername(ctx *fiber.Ctx) string {
	name, _ := ctx.Locals(localsUsername).(string)
	return name
}
