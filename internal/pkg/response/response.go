package response

import "github.com/gofiber/fiber/v3"

// Machine-readable failure kinds. The message strings stay human-oriented
// and are the only other signal clients get.
const (
	CodeBadRequest = "bad_request"
	CodeNotFound   = "not_found"
	CodeOwnJob     = "own_job"
	CodeInternal   = "internal"
)

type Failure struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type JobCreated struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"jobId"`
}

type ApplicationCreated struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

type Health struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Fail(c fiber.Ctx, status int, code, message string) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if code == "" {
		code = CodeInternal
	}
	return c.Status(status).JSON(Failure{Success: false, Code: code, Message: message})
}
