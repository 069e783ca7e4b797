package handler

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/notification"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubNotificationUsecase struct {
	items []notification.Notification
	err   error
}

func (s *stubNotificationUsecase) ListNotifications(_ context.Context, userID string) ([]notification.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]notification.Notification, 0)
	for _, n := range s.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func TestHandleListNotifications(t *testing.T) {
	jobID := uuid.New()
	stub := &stubNotificationUsecase{items: []notification.Notification{
		{ID: uuid.New(), UserID: "alice", Message: "You have a new application for the job: Engineer", JobID: jobID, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: "bob", Message: "other", JobID: jobID, CreatedAt: time.Now()},
	}}

	f := fiber.New()
	f.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewNotificationsHandler(stub).RegisterRoutes(f)

	resp, err := f.Test(httptest.NewRequest(fiber.MethodGet, "/notifications/alice", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out []map[string]any
	decodeBody(t, resp.Body, &out)
	if len(out) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out))
	}
	if out[0]["userId"] != "alice" {
		t.Fatalf("unexpected recipient: %v", out[0])
	}

	resp, err = f.Test(httptest.NewRequest(fiber.MethodGet, "/notifications/nobody", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for empty result, got %d", resp.StatusCode)
	}

	var empty []map[string]any
	decodeBody(t, resp.Body, &empty)
	if len(empty) != 0 {
		t.Fatalf("expected empty array, got %v", empty)
	}
}
