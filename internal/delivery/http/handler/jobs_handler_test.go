package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type memJobRepo struct {
	jobs  map[uuid.UUID]job.Job
	order []uuid.UUID
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[uuid.UUID]job.Job{}}
}

func (m *memJobRepo) Create(_ context.Context, j job.Job) error {
	m.jobs[j.ID] = j
	m.order = append(m.order, j.ID)
	return nil
}

func (m *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *memJobRepo) List(_ context.Context) ([]job.Job, error) {
	out := make([]job.Job, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.jobs[id])
	}
	return out, nil
}

func newJobsTestApp(repo *memJobRepo) *fiber.App {
	f := fiber.New()
	f.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewJobsHandler(usecase.NewJobService(repo, nil, nil, nil)).RegisterRoutes(f)
	return f
}

func postJobForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func decodeBody(t *testing.T, r io.Reader, out any) {
	t.Helper()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("decode body %q: %v", b, err)
	}
}

func TestPostJobThenGetJob(t *testing.T) {
	app := newJobsTestApp(newMemJobRepo())

	body, contentType := postJobForm(t, map[string]string{
		"companyName":      "Acme",
		"designation":      "Engineer",
		"salary":           "50000",
		"location":         "Remote",
		"hours":            "40",
		"responsibilities": "Build things",
	})
	req := httptest.NewRequest(fiber.MethodPost, "/jobs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		JobID   string `json:"jobId"`
	}
	decodeBody(t, resp.Body, &created)
	if !created.Success || created.JobID == "" {
		t.Fatalf("unexpected create response: %+v", created)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/jobs/"+created.JobID, nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got map[string]any
	decodeBody(t, resp.Body, &got)
	if got["companyName"] != "Acme" || got["designation"] != "Engineer" {
		t.Fatalf("unexpected job body: %v", got)
	}
	if got["salary"] != float64(50000) {
		t.Fatalf("expected salary 50000, got %v", got["salary"])
	}
	if got["companyLogo"] != nil {
		t.Fatalf("expected null companyLogo, got %v", got["companyLogo"])
	}
}

func TestGetJob_MalformedVsMissingID(t *testing.T) {
	app := newJobsTestApp(newMemJobRepo())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/jobs/not-an-id", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/jobs/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", resp.StatusCode)
	}

	var fail struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	decodeBody(t, resp.Body, &fail)
	if fail.Success || fail.Code != "not_found" || fail.Message != "Job not found" {
		t.Fatalf("unexpected failure body: %+v", fail)
	}
}

func TestListJobs_Empty(t *testing.T) {
	app := newJobsTestApp(newMemJobRepo())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/jobs", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out []map[string]any
	decodeBody(t, resp.Body, &out)
	if len(out) != 0 {
		t.Fatalf("expected empty array, got %v", out)
	}
}
