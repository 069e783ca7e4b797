package routes

import (
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type Registry struct {
	Health        *handler.HealthHandler
	Jobs          *handler.JobsHandler
	Applications  *handler.ApplicationsHandler
	Notifications *handler.NotificationsHandler
	WS            *ws.Handler
	UploadDir     string
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(app)
	}
	if r.Applications != nil {
		r.Applications.RegisterRoutes(app)
	}
	if r.Notifications != nil {
		r.Notifications.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/notifications/:userId", r.WS.HandleNotificationsWS)
	}
	if r.UploadDir != "" {
		app.Use("/uploads", static.New(r.UploadDir))
	}
}
