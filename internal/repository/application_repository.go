package repository

import (
	"context"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"
)

type ApplicationRepository interface {
	Create(ctx context.Context, ex database.Executor, a application.Application) error
}

type PostgresApplicationRepository struct{}

func NewPostgresApplicationRepository() *PostgresApplicationRepository {
	return &PostgresApplicationRepository{}
}

// Create inserts through the given executor so the apply flow can pair it
// with the notification insert in one transaction.
func (r *PostgresApplicationRepository) Create(ctx context.Context, ex database.Executor, a application.Application) error {
	_, err := ex.Exec(ctx,
		`INSERT INTO applications (id, job_id, user_id, resume_link, applied_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.JobID, a.UserID, a.ResumeLink, a.AppliedAt,
	)
	return err
}
