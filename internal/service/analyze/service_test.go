package analyze

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"braindumper/internal/config"
	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
	"braindumper/internal/domain/services"
	"braindumper/internal/service/llm"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Complete(_ context.Context, _ *llm.CompletionRequest) (string, error) {
	return p.reply, p.err
}

type recordingSessionRepo struct {
	created []*models.Session
}

func (r *recordingSessionRepo) Create(_ context.Context, s *models.Session) error {
	r.created = append(r.created, s)
	return nil
}

func (r *recordingSessionRepo) GetByID(context.Context, string, string) (*models.Session, error) {
	return nil, domain.ErrNotFound
}

func (r *recordingSessionRepo) List(context.Context, string, int) ([]models.Session, error) {
	return nil, nil
}

func (r *recordingSessionRepo) UpdateStatus(context.Context, string, string, string) (*models.Session, error) {
	return nil, domain.ErrNotFound
}

func (r *recordingSessionRepo) Delete(context.Context, string, string) error { return nil }

type recordingTaskRepo struct {
	created []*models.Task
}

func (r *recordingTaskRepo) Create(_ context.Context, t *models.Task) error {
	t.ID = "generated-id"
	r.created = append(r.created, t)
	return nil
}

func (r *recordingTaskRepo) GetByID(context.Context, string, string) (*models.Task, error) {
	return nil, domain.ErrNotFound
}

func (r *recordingTaskRepo) List(context.Context, string, int) ([]models.Task, error) {
	return nil, nil
}

func (r *recordingTaskRepo) ListBySession(context.Context, string, string) ([]models.Task, error) {
	return nil, nil
}

func (r *recordingTaskRepo) Update(context.Context, *models.Task) error { return nil }

func (r *recordingTaskRepo) Delete(context.Context, string, string) error { return nil }

type recordingActivityRepo struct {
	events []*models.ActivityEvent
}

func (r *recordingActivityRepo) Append(_ context.Context, e *models.ActivityEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recordingActivityRepo) Recent(context.Context, string, int) ([]models.ActivityEvent, error) {
	return nil, nil
}

type passthroughTx struct{}

func (passthroughTx) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

func newTestService(reply string, replyErr error) (*analyzeService, *recordingSessionRepo, *recordingTaskRepo, *recordingActivityRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := llm.NewProviderRegistry(nil, logger)
	registry.Register(&stubProvider{reply: reply, err: replyErr})

	sessions := &recordingSessionRepo{}
	tasks := &recordingTaskRepo{}
	activity := &recordingActivityRepo{}

	svc := NewService(
		sessions, tasks, activity, passthroughTx{},
		registry,
		&config.Config{DefaultModel: "gemini-2.0-flash"},
		logger,
	).(*analyzeService)
	svc.now = func() time.Time { return testNow }

	return svc, sessions, tasks, activity
}

func TestAnalyzeDumpPersistsSessionAndTasks(t *testing.T) {
	reply := `{
		"summary": "Exam prep dominates this week.",
		"tasks": [
			{"title": "Finish OS assignment", "status": "in_progress", "bucket": "now", "priority": "high"},
			{"title": "Review notes", "status": "done"},
			{"title": "Email advisor"}
		]
	}`
	svc, sessions, tasks, activity := newTestService(reply, nil)

	result, err := svc.AnalyzeDump(context.Background(), &services.AnalyzeRequest{
		UserID: "user-1",
		Text:   "exams exams exams",
	})
	if err != nil {
		t.Fatalf("AnalyzeDump: %v", err)
	}

	if len(sessions.created) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions.created))
	}
	session := sessions.created[0]
	if session.ID != result.SessionID {
		t.Errorf("session id = %q, want %q", session.ID, result.SessionID)
	}
	if session.UserID != "user-1" || session.RawDump != "exams exams exams" {
		t.Errorf("session = %+v", session)
	}
	if session.Status != models.SessionStatusActive {
		t.Errorf("status = %q", session.Status)
	}
	if session.Title != "Exam prep dominates this week." {
		t.Errorf("title = %q", session.Title)
	}

	if len(tasks.created) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks.created))
	}
	wantStatus := []string{
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
		models.TaskStatusPending,
	}
	for i, task := range tasks.created {
		if task.Status != wantStatus[i] {
			t.Errorf("task %d status = %q, want %q", i, task.Status, wantStatus[i])
		}
		if task.SessionID != result.SessionID {
			t.Errorf("task %d sessionId = %q", i, task.SessionID)
		}
	}
	if tasks.created[1].CompletedAt == nil {
		t.Error("completed task missing completedAt")
	}
	if tasks.created[0].CompletedAt != nil || tasks.created[2].CompletedAt != nil {
		t.Error("non-completed tasks should not have completedAt")
	}

	if len(activity.events) != 1 || activity.events[0].Type != models.ActivitySessionCreated {
		t.Errorf("activity = %+v", activity.events)
	}
}

func TestAnalyzeDumpDropsOversizedSections(t *testing.T) {
	// A sections payload past the storage cap is dropped whole, never
	// truncated mid-document.
	reply := `{
		"summary": "One very large section.",
		"sections": [{"title": "Notes", "items": ["` + strings.Repeat("a", config.MaxSectionsLength) + `"]}]
	}`
	svc, sessions, _, _ := newTestService(reply, nil)

	result, err := svc.AnalyzeDump(context.Background(), &services.AnalyzeRequest{
		UserID: "user-1",
		Text:   "so many notes",
	})
	if err != nil {
		t.Fatalf("AnalyzeDump: %v", err)
	}

	if len(sessions.created) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions.created))
	}
	if got := sessions.created[0].Sections; got != "[]" {
		t.Errorf("sections = %d bytes, want empty list", len(got))
	}
	// The API response still carries the full sections.
	if len(result.Sections) != 1 {
		t.Errorf("result sections = %d, want 1", len(result.Sections))
	}
}

func TestAnalyzeDumpRejectsBlankText(t *testing.T) {
	svc, _, _, _ := newTestService(`{}`, nil)

	for _, text := range []string{"", "   \n\t "} {
		_, err := svc.AnalyzeDump(context.Background(), &services.AnalyzeRequest{
			UserID: "user-1",
			Text:   text,
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("text %q: err = %v, want ErrValidation", text, err)
		}
	}
}

func TestAnalyzeDumpMalformedCompletion(t *testing.T) {
	svc, sessions, _, _ := newTestService("I'm sorry, I can't do that.", nil)

	_, err := svc.AnalyzeDump(context.Background(), &services.AnalyzeRequest{
		UserID: "user-1",
		Text:   "organize my life",
	})
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
	if len(sessions.created) != 0 {
		t.Error("nothing should persist on a malformed response")
	}
}

func TestAnalyzeDumpProviderFailure(t *testing.T) {
	svc, _, _, _ := newTestService("", errors.New("rate limited"))

	_, err := svc.AnalyzeDump(context.Background(), &services.AnalyzeRequest{
		UserID: "user-1",
		Text:   "organize my life",
	})
	if err == nil {
		t.Fatal("expected error when every provider fails")
	}
	if !errors.Is(err, llm.ErrNoProvider) {
		t.Errorf("err = %v, want ErrNoProvider", err)
	}
}
