package dto

import (
	"time"

	"job-portal/internal/domain/notification"
)

type NotificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Message   string `json:"message"`
	JobID     string `json:"jobId"`
	CreatedAt string `json:"createdAt"`
}

func NewNotificationListResponse(items []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{
			ID:        n.ID.String(),
			UserID:    n.UserID,
			Message:   n.Message,
			JobID:     n.JobID.String(),
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
