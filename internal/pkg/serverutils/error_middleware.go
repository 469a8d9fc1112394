package serverutils

import (
	"errors"
	"strings"

	"notebook-dashboard-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps errors escaping the handlers onto the response
// surface: the JSON envelope for /api routes, the error page otherwise.
// Wired as the fiber.Config ErrorHandler so transport-level failures
// (notably the 16 MiB body cap) land here too.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Something went wrong"

		var appErr *AppError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = StatusCode(appErr.Code)
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
			if status == fiber.StatusRequestEntityTooLarge {
				message = "Upload too large (16 MB maximum)"
			}
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		} else {
			log.Warn("http", "request rejected", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}

		if strings.HasPrefix(ctx.Path(), "/api") {
			return ctx.Status(status).JSON(ErrorResponse(message))
		}

		renderErr := ctx.Status(status).Render("error", fiber.Map{
			"Title":   "Error",
			"Message": message,
			"Status":  status,
		}, "layouts/main")
		if renderErr != nil {
			// Views unavailable (e.g. misconfigured dir): fall back to text.
			return ctx.Status(status).SendString(message)
		}
		return nil
	}
}
