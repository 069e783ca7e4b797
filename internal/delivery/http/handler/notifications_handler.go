package handler

import (
	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationsHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationsHandler(uc usecase.NotificationUsecase) *NotificationsHandler {
	return &NotificationsHandler{uc: uc}
}

func (h *NotificationsHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/notifications/:userId", h.HandleListNotifications)
}

func (h *NotificationsHandler) HandleListNotifications(c fiber.Ctx) error {
	items, err := h.uc.ListNotifications(c.Context(), c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternal, "Failed to fetch notifications", err)
	}

	return c.JSON(dto.NewNotificationListResponse(items))
}
