package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/notification"

	"github.com/google/uuid"
)

type mockTx struct {
	committed  bool
	rolledBack bool
}

func (t *mockTx) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (t *mockTx) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}
func (t *mockTx) Commit(context.Context) error {
	t.committed = true
	return nil
}
func (t *mockTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type mockDB struct {
	tx       *mockTx
	beginErr error
}

func (m *mockDB) Ping(context.Context) error { return nil }
func (m *mockDB) Close() error               { return nil }
func (m *mockDB) SQLDB() *sql.DB             { return nil }
func (m *mockDB) Exec(context.Context, string, ...any) (int64, error) { return 0, nil }
func (m *mockDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, nil
}
func (m *mockDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (m *mockDB) Begin(context.Context) (database.Tx, error) {
	if m.beginErr != nil {
		return nil, m.beginErr
	}
	m.tx = &mockTx{}
	return m.tx, nil
}

type mockApplicationRepo struct {
	created []application.Application
	err     error
}

func (m *mockApplicationRepo) Create(_ context.Context, _ database.Executor, a application.Application) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}

type mockNotificationRepo struct {
	created []notification.Notification
	items   []notification.Notification
	err     error
	listErr error
}

func (m *mockNotificationRepo) Create(_ context.Context, _ database.Executor, n notification.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) ListByUserID(_ context.Context, userID string) ([]notification.Notification, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]notification.Notification, 0)
	for _, n := range m.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type mockLiveNotifier struct {
	userIDs []string
}

func (m *mockLiveNotifier) ApplicationReceived(userID string, _ uuid.UUID, _ string) {
	m.userIDs = append(m.userIDs, userID)
}

func seedJob(repo *mockJobRepo, posterID string) job.Job {
	j := job.Job{
		ID:          uuid.New(),
		UserID:      posterID,
		Designation: "Engineer",
		CompanyName: "Acme",
	}
	repo.jobs[j.ID] = j
	repo.order = append(repo.order, j.ID)
	return j
}

func TestApplicationService_Apply_OwnJobRejected(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(jobs, "poster-1")
	apps := &mockApplicationRepo{}
	notifs := &mockNotificationRepo{}
	db := &mockDB{}
	svc := NewApplicationService(db, jobs, apps, notifs, nil, nil)

	_, err := svc.Apply(context.Background(), ApplyInput{
		JobID:      j.ID.String(),
		UserID:     "poster-1",
		ResumeLink: "https://cv.example/me",
	})
	if !errors.Is(err, ErrOwnJob) {
		t.Fatalf("expected ErrOwnJob, got %v", err)
	}
	if len(apps.created) != 0 || len(notifs.created) != 0 {
		t.Fatalf("ownership violation must not persist anything")
	}
	if db.tx != nil {
		t.Fatalf("no transaction should be opened before the ownership check passes")
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	svc := NewApplicationService(&mockDB{}, newMockJobRepo(), &mockApplicationRepo{}, &mockNotificationRepo{}, nil, nil)

	_, err := svc.Apply(context.Background(), ApplyInput{
		JobID:  uuid.NewString(),
		UserID: "applicant-1",
	})
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationService_Apply_MalformedJobID(t *testing.T) {
	svc := NewApplicationService(&mockDB{}, newMockJobRepo(), &mockApplicationRepo{}, &mockNotificationRepo{}, nil, nil)

	_, err := svc.Apply(context.Background(), ApplyInput{JobID: "nope", UserID: "applicant-1"})
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestApplicationService_Apply_Success(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(jobs, "poster-1")
	apps := &mockApplicationRepo{}
	notifs := &mockNotificationRepo{}
	live := &mockLiveNotifier{}
	db := &mockDB{}
	svc := NewApplicationService(db, jobs, apps, notifs, live, nil)

	id, err := svc.Apply(context.Background(), ApplyInput{
		JobID:      j.ID.String(),
		UserID:     "applicant-1",
		ResumeLink: "https://cv.example/me",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(apps.created) != 1 {
		t.Fatalf("expected exactly one application, got %d", len(apps.created))
	}
	a := apps.created[0]
	if a.ID != id || a.JobID != j.ID || a.UserID != "applicant-1" || a.ResumeLink != "https://cv.example/me" {
		t.Fatalf("unexpected application: %+v", a)
	}

	if len(notifs.created) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifs.created))
	}
	n := notifs.created[0]
	if n.UserID != "poster-1" {
		t.Fatalf("notification must address the poster, got %q", n.UserID)
	}
	if !strings.Contains(n.Message, j.Designation) {
		t.Fatalf("message %q must mention designation %q", n.Message, j.Designation)
	}
	if n.JobID != j.ID {
		t.Fatalf("notification must reference the job")
	}

	if db.tx == nil || !db.tx.committed {
		t.Fatalf("expected a committed transaction")
	}
	if len(live.userIDs) != 1 || live.userIDs[0] != "poster-1" {
		t.Fatalf("expected live push to poster, got %v", live.userIDs)
	}
}

func TestApplicationService_Apply_NotificationFailureRollsBack(t *testing.T) {
	jobs := newMockJobRepo()
	j := seedJob(jobs, "poster-1")
	apps := &mockApplicationRepo{}
	notifs := &mockNotificationRepo{err: errors.New("write failed")}
	db := &mockDB{}
	svc := NewApplicationService(db, jobs, apps, notifs, nil, nil)

	_, err := svc.Apply(context.Background(), ApplyInput{
		JobID:  j.ID.String(),
		UserID: "applicant-1",
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if db.tx == nil || db.tx.committed || !db.tx.rolledBack {
		t.Fatalf("expected rollback without commit")
	}
}
