package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"job-portal/internal/domain/job"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

// storageTimeout bounds every storage round trip so a hung gateway call
// cannot hang the request forever.
const storageTimeout = 5 * time.Second

const jobsListCacheKey = "jobs:list:all"

type CreateJobInput struct {
	UserID           string
	CompanyName      string
	Designation      string
	Salary           string
	Location         string
	Hours            string
	Responsibilities string
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in CreateJobInput, logo *multipart.FileHeader) (uuid.UUID, error)
	ListJobs(ctx context.Context) ([]job.Job, error)
	GetJob(ctx context.Context, rawID string) (job.Job, error)
}

// Uploader stores one uploaded file and returns its generated filename.
type Uploader interface {
	Save(fh *multipart.FileHeader) (string, error)
}

type JobService struct {
	jobs    repository.JobRepository
	uploads Uploader
	cache   ListingCache
	logger  *log.Logger
}

func NewJobService(jobs repository.JobRepository, uploads Uploader, cache ListingCache, logger *log.Logger) *JobService {
	return &JobService{jobs: jobs, uploads: uploads, cache: cache, logger: logger}
}

func (s *JobService) CreateJob(ctx context.Context, in CreateJobInput, logo *multipart.FileHeader) (uuid.UUID, error) {
	var logoName *string
	if logo != nil {
		if s.uploads == nil {
			return uuid.Nil, ErrInternal
		}
		name, err := s.uploads.Save(logo)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("[Jobs] Logo upload failed: %v", err)
			}
			return uuid.Nil, ErrInternal
		}
		logoName = &name
	}

	j := job.Job{
		ID:               uuid.New(),
		UserID:           in.UserID,
		CompanyName:      in.CompanyName,
		Designation:      in.Designation,
		Salary:           parseSalary(in.Salary),
		Location:         in.Location,
		Hours:            in.Hours,
		Responsibilities: in.Responsibilities,
		CompanyLogo:      logoName,
		CreatedAt:        time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if err := s.jobs.Create(ctx, j); err != nil {
		if s.logger != nil {
			s.logger.Printf("[Jobs] Create failed: %v", err)
		}
		return uuid.Nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, jobsListCacheKey)
	}

	return j.ID, nil
}

func (s *JobService) ListJobs(ctx context.Context) ([]job.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if s.cache != nil {
		var cached []job.Job
		hit, err := s.cache.GetJSON(ctx, jobsListCacheKey, &cached)
		if err == nil && hit {
			if s.logger != nil {
				s.logger.Printf("[Jobs] Cache HIT: %s", jobsListCacheKey)
			}
			return cached, nil
		}
	}

	out, err := s.jobs.List(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Jobs] List failed: %v", err)
		}
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, jobsListCacheKey, out, 0)
	}

	return out, nil
}

func (s *JobService) GetJob(ctx context.Context, rawID string) (job.Job, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return job.Job{}, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, err
		}
		if s.logger != nil {
			s.logger.Printf("[Jobs] Get failed: id=%s err=%v", id, err)
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// parseSalary mirrors the permissive coercion the portal always had: any
// text that does not parse is stored as NaN rather than rejected.
func parseSalary(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
