package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID
	UserID    string
	Message   string
	JobID     uuid.UUID
	CreatedAt time.Time
}
