package handler

import (
	"errors"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	UserID     string `json:"userId"`
	ResumeLink string `json:"resumeLink"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

func (h *ApplicationsHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Post("/apply/:jobId", h.HandleApply)
}

func (h *ApplicationsHandler) HandleApply(c fiber.Ctx) error {
	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeBadRequest, "Invalid request payload", err)
	}

	id, err := h.uc.Apply(c.Context(), usecase.ApplyInput{
		JobID:      c.Params("jobId"),
		UserID:     req.UserID,
		ResumeLink: req.ResumeLink,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			return middleware.NewAppError(fiber.StatusBadRequest, response.CodeBadRequest, "Invalid job id", err)
		case errors.Is(err, job.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "Job not found", err)
		case errors.Is(err, usecase.ErrOwnJob):
			return middleware.NewAppError(fiber.StatusBadRequest, response.CodeOwnJob, "You cannot apply for your own job", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "Failed to apply for the job", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(response.ApplicationCreated{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: id.String(),
	})
}
