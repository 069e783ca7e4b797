package middleware

import (
	"errors"
	"log"

	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Cause: cause}
}

// ErrorMiddleware converts every error that escapes a handler into the
// portal's failure body. Causes are logged server-side only.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m != nil && m.logger != nil {
					m.logger.Printf("panic recovered: %v", r)
				}
				err = response.Fail(c, fiber.StatusInternalServerError, response.CodeInternal, "Internal server error")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, code, msg := normalizeError(err)
		if m != nil && m.logger != nil && status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s status=%d err=%v", c.Method(), c.OriginalURL(), status, err)
		}
		return response.Fail(c, status, code, msg)
	}
}

func normalizeError(err error) (int, string, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.CodeInternal, "Internal server error"
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		code := appErr.Code
		if code == "" {
			code = defaultCodeForStatus(status)
		}
		msg := appErr.Message
		if msg == "" {
			msg = "Internal server error"
		}
		return status, code, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		msg := fiberErr.Message
		if msg == "" || status >= 500 {
			msg = "Internal server error"
		}
		return status, defaultCodeForStatus(status), msg
	}

	return fiber.StatusInternalServerError, response.CodeInternal, "Internal server error"
}

func defaultCodeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return response.CodeNotFound
	case status >= 400 && status < 500:
		return response.CodeBadRequest
	default:
		return response.CodeInternal
	}
}
