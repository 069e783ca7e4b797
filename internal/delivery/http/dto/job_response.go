package dto

import (
	"math"
	"time"

	"job-portal/internal/domain/job"
)

// JobResponse is the wire shape for a job listing. Salary is a pointer
// so the NaN sentinel serializes as null, the way the old API emitted it.
type JobResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"userId,omitempty"`
	CompanyName      string   `json:"companyName"`
	Designation      string   `json:"designation"`
	Salary           *float64 `json:"salary"`
	Location         string   `json:"location"`
	Hours            string   `json:"hours"`
	Responsibilities string   `json:"responsibilities"`
	CompanyLogo      *string  `json:"companyLogo"`
	CreatedAt        string   `json:"createdAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	var salary *float64
	if !math.IsNaN(j.Salary) {
		v := j.Salary
		salary = &v
	}

	return JobResponse{
		ID:               j.ID.String(),
		UserID:           j.UserID,
		CompanyName:      j.CompanyName,
		Designation:      j.Designation,
		Salary:           salary,
		Location:         j.Location,
		Hours:            j.Hours,
		Responsibilities: j.Responsibilities,
		CompanyLogo:      j.CompanyLogo,
		CreatedAt:        j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
