package handler

import (
	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	// Root liveness string predates the health endpoint; both stay.
	app.Get("/", h.HandleRoot)
	app.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleRoot(c fiber.Ctx) error {
	return c.SendString("Job Portal server is running")
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	return c.JSON(response.Health{Success: true, Message: "ok"})
}
