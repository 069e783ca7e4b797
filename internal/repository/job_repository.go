package repository

import (
	"context"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, user_id, company_name, designation, salary, location, hours, responsibilities, company_logo, created_at)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)`,
		j.ID, j.UserID, j.CompanyName, j.Designation, j.Salary,
		j.Location, j.Hours, j.Responsibilities, j.CompanyLogo, j.CreatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(user_id, ''), company_name, designation, salary, location, hours, responsibilities, company_logo, created_at
		 FROM jobs
		 WHERE id = $1`,
		id,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(user_id, ''), company_name, designation, salary, location, hours, responsibilities, company_logo, created_at
		 FROM jobs
		 ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.UserID, &j.CompanyName, &j.Designation, &j.Salary,
		&j.Location, &j.Hours, &j.Responsibilities, &j.CompanyLogo, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}
