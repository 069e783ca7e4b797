package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/notification"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type ApplyInput struct {
	JobID      string
	UserID     string
	ResumeLink string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, in ApplyInput) (uuid.UUID, error)
}

// LiveNotifier pushes an application event to the poster's open sockets.
// Delivery is best effort and never fails the apply call.
type LiveNotifier interface {
	ApplicationReceived(userID string, jobID uuid.UUID, designation string)
}

type ApplicationService struct {
	db     database.DB
	jobs   repository.JobRepository
	apps   repository.ApplicationRepository
	notifs repository.NotificationRepository
	live   LiveNotifier
	logger *log.Logger
}

func NewApplicationService(
	db database.DB,
	jobs repository.JobRepository,
	apps repository.ApplicationRepository,
	notifs repository.NotificationRepository,
	live LiveNotifier,
	logger *log.Logger,
) *ApplicationService {
	return &ApplicationService{db: db, jobs: jobs, apps: apps, notifs: notifs, live: live, logger: logger}
}

// Apply records one application and the matching notification for the
// poster. The ownership check compares identifier values: a poster may not
// apply to their own listing.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (uuid.UUID, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(in.JobID))
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return uuid.Nil, err
		}
		if s.logger != nil {
			s.logger.Printf("[Apply] Job lookup failed: id=%s err=%v", jobID, err)
		}
		return uuid.Nil, ErrInternal
	}

	if j.UserID == in.UserID {
		return uuid.Nil, ErrOwnJob
	}

	now := time.Now().UTC()
	app := application.Application{
		ID:         uuid.New(),
		JobID:      jobID,
		UserID:     in.UserID,
		ResumeLink: in.ResumeLink,
		AppliedAt:  now,
	}
	n := notification.Notification{
		ID:        uuid.New(),
		UserID:    j.UserID,
		Message:   fmt.Sprintf("You have a new application for the job: %s", j.Designation),
		JobID:     jobID,
		CreatedAt: now,
	}

	if err := s.insertBoth(ctx, app, n); err != nil {
		if s.logger != nil {
			s.logger.Printf("[Apply] Write failed: job_id=%s err=%v", jobID, err)
		}
		return uuid.Nil, ErrInternal
	}

	if s.live != nil {
		s.live.ApplicationReceived(j.UserID, jobID, j.Designation)
	}

	return app.ID, nil
}

// insertBoth writes the application and its notification in one
// transaction so the pair lands or neither does.
func (s *ApplicationService) insertBoth(ctx context.Context, app application.Application, n notification.Notification) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := s.apps.Create(ctx, tx, app); err != nil {
		return err
	}
	if err := s.notifs.Create(ctx, tx, n); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	committed = true
	return nil
}
