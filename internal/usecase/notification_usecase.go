package usecase

import (
	"context"
	"log"

	"job-portal/internal/domain/notification"
	"job-portal/internal/repository"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID string) ([]notification.Notification, error)
}

type NotificationService struct {
	notifs repository.NotificationRepository
	logger *log.Logger
}

func NewNotificationService(notifs repository.NotificationRepository, logger *log.Logger) *NotificationService {
	return &NotificationService{notifs: notifs, logger: logger}
}

// ListNotifications returns every notification addressed to the user. A
// user with none gets an empty slice, not an error.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string) ([]notification.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	out, err := s.notifs.ListByUserID(ctx, userID)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Notifications] List failed: user_id=%s err=%v", userID, err)
		}
		return nil, ErrInternal
	}
	return out, nil
}
