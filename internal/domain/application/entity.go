package application

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	UserID     string
	ResumeLink string
	AppliedAt  time.Time
}
