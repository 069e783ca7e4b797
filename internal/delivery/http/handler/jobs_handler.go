package handler

import (
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Post("/jobs", h.HandleCreateJob)
	app.Get("/jobs", h.HandleListJobs)
	app.Get("/jobs/:id", h.HandleGetJob)
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	in := usecase.CreateJobInput{
		UserID:           c.FormValue("userId"),
		CompanyName:      c.FormValue("companyName"),
		Designation:      c.FormValue("designation"),
		Salary:           c.FormValue("salary"),
		Location:         c.FormValue("location"),
		Hours:            c.FormValue("hours"),
		Responsibilities: c.FormValue("responsibilities"),
	}

	// A missing logo is the normal case, not an error.
	logo, err := c.FormFile("companyLogo")
	if err != nil {
		logo = nil
	}

	id, err := h.uc.CreateJob(c.Context(), in, logo)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "Failed to post job", err)
	}

	return c.Status(fiber.StatusCreated).JSON(response.JobCreated{
		Success: true,
		Message: "Job posted successfully",
		JobID:   id.String(),
	})
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "Failed to fetch jobs", err)
	}

	return c.JSON(dto.NewJobListResponse(jobs))
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	j, err := h.uc.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			return middleware.NewAppError(fiber.StatusBadRequest, response.CodeBadRequest, "Invalid job id", err)
		case errors.Is(err, job.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, response.CodeNotFound, "Job not found", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "Failed to get job", err)
		}
	}

	return c.JSON(dto.NewJobResponse(j))
}
