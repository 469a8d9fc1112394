package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ErrCode string

const (
	ErrCodeNotFound           ErrCode = "NOT_FOUND"
	ErrCodeAccessDenied       ErrCode = "ACCESS_DENIED"
	ErrCodeUnauthorized       ErrCode = "UNAUTHORIZED"
	ErrCodeInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrCodeDuplicateUsername  ErrCode = "DUPLICATE_USERNAME"
	ErrCodeDuplicateEmail     ErrCode = "DUPLICATE_EMAIL"
	ErrCodeNoFileProvided     ErrCode = "NO_FILE_PROVIDED"
	ErrCodeInvalidFileType    ErrCode = "INVALID_FILE_TYPE"
	ErrCodePayloadTooLarge    ErrCode = "PAYLOAD_TOO_LARGE"
	ErrCodeValidation         ErrCode = "VALIDATION_FAILED"
	ErrCodeInternal           ErrCode = "INTERNAL"
)

// AppError is the one error shape services return for expected failures.
// Controllers branch on Code; the middleware maps it to a status.
type AppError struct {
	Code    ErrCode
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code ErrCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// CodeOf extracts the AppError code, if err carries one.
func CodeOf(err error) (ErrCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

func IsCode(err error, code ErrCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

func StatusCode(code ErrCode) int {
	switch code {
	case ErrCodeNotFound:
		return fiber.StatusNotFound
	case ErrCodeAccessDenied:
		return fiber.StatusForbidden
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case ErrCodeDuplicateUsername, ErrCodeDuplicateEmail:
		return fiber.StatusConflict
	case ErrCodeNoFileProvided, ErrCodeInvalidFileType, ErrCodeValidation:
		return fiber.StatusBadRequest
	case ErrCodePayloadTooLarge:
		return fiber.StatusRequestEntityTooLarge
	default:
		return fiber.StatusInternalServerError
	}
}
