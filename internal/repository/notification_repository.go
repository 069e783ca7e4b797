package repository

import (
	"context"

	"job-portal/internal/database"
	"job-portal/internal/domain/notification"
)

type NotificationRepository interface {
	Create(ctx context.Context, ex database.Executor, n notification.Notification) error
	ListByUserID(ctx context.Context, userID string) ([]notification.Notification, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, ex database.Executor, n notification.Notification) error {
	_, err := ex.Exec(ctx,
		`INSERT INTO notifications (id, user_id, message, job_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.UserID, n.Message, n.JobID, n.CreatedAt,
	)
	return err
}

func (r *PostgresNotificationRepository) ListByUserID(ctx context.Context, userID string) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, message, job_id, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.JobID, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
