package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// Job is a posted position. UserID identifies the poster and may be empty
// for listings created without one. Salary keeps whatever ParseFloat
// produced, including NaN for unparseable input.
type Job struct {
	ID               uuid.UUID
	UserID           string
	CompanyName      string
	Designation      string
	Salary           float64
	Location         string
	Hours            string
	Responsibilities string
	CompanyLogo      *string
	CreatedAt        time.Time
}
