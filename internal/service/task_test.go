package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"braindumper/internal/config"
	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/services"
	"braindumper/internal/service/llm"
)

var fixedNow = time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

type memTaskRepo struct {
	tasks map[string]*models.Task
}

func newMemTaskRepo(tasks ...*models.Task) *memTaskRepo {
	r := &memTaskRepo{tasks: make(map[string]*models.Task)}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *memTaskRepo) Create(_ context.Context, t *models.Task) error {
	if t.ID == "" {
		t.ID = "task-new"
	}
	copied := *t
	r.tasks[t.ID] = &copied
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id, userID string) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *memTaskRepo) List(context.Context, string, int) ([]models.Task, error) { return nil, nil }

func (r *memTaskRepo) ListBySession(context.Context, string, string) ([]models.Task, error) {
	return nil, nil
}

func (r *memTaskRepo) Update(_ context.Context, t *models.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *t
	r.tasks[t.ID] = &copied
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id, _ string) error {
	delete(r.tasks, id)
	return nil
}

type memActivityRepo struct {
	events []*models.ActivityEvent
}

func (r *memActivityRepo) Append(_ context.Context, e *models.ActivityEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *memActivityRepo) Recent(context.Context, string, int) ([]models.ActivityEvent, error) {
	return nil, nil
}

type jsonProvider struct {
	reply string
}

func (p *jsonProvider) Name() string { return "stub" }

func (p *jsonProvider) Complete(context.Context, *llm.CompletionRequest) (string, error) {
	return p.reply, nil
}

func newTestTaskService(repo *memTaskRepo, activity *memActivityRepo, reply string) *taskService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := llm.NewProviderRegistry(nil, logger)
	registry.Register(&jsonProvider{reply: reply})

	svc := NewTaskService(repo, activity, registry, &config.Config{DefaultModel: "gemini-2.0-flash"}, logger).(*taskService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestUpdateTaskStampsCompletedAtOnce(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{
		ID:     "t1",
		UserID: "user-1",
		Title:  "Write report",
		Status: models.TaskStatusPending,
	})
	activity := &memActivityRepo{}
	svc := newTestTaskService(repo, activity, "{}")

	status := models.TaskStatusCompleted
	task, err := svc.UpdateTask(context.Background(), "t1", "user-1", &services.UpdateTaskRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(fixedNow) {
		t.Fatalf("completedAt = %v, want %v", task.CompletedAt, fixedNow)
	}
	if len(activity.events) != 1 || activity.events[0].Type != models.ActivityTaskCompleted {
		t.Errorf("activity = %+v", activity.events)
	}

	// completing an already-completed task keeps the original timestamp
	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	task, err = svc.UpdateTask(context.Background(), "t1", "user-1", &services.UpdateTaskRequest{Status: &status})
	if err != nil {
		t.Fatalf("second UpdateTask: %v", err)
	}
	if !task.CompletedAt.Equal(fixedNow) {
		t.Errorf("completedAt moved to %v", task.CompletedAt)
	}
	if len(activity.events) != 1 {
		t.Errorf("expected no second task_completed event, got %d", len(activity.events))
	}
}

func TestUpdateTaskHonorsCallerCompletedAt(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{
		ID:     "t1",
		UserID: "user-1",
		Title:  "Write report",
		Status: models.TaskStatusInProgress,
	})
	svc := newTestTaskService(repo, &memActivityRepo{}, "{}")

	status := models.TaskStatusCompleted
	explicit := fixedNow.Add(-2 * time.Hour)
	task, err := svc.UpdateTask(context.Background(), "t1", "user-1", &services.UpdateTaskRequest{
		Status:      &status,
		CompletedAt: &explicit,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !task.CompletedAt.Equal(explicit) {
		t.Errorf("completedAt = %v, want caller-supplied %v", task.CompletedAt, explicit)
	}
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{ID: "t1", UserID: "user-1", Status: models.TaskStatusPending})
	svc := newTestTaskService(repo, &memActivityRepo{}, "{}")

	status := "archived"
	_, err := svc.UpdateTask(context.Background(), "t1", "user-1", &services.UpdateTaskRequest{Status: &status})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestStartFocusOnCompletedTask(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{ID: "t1", UserID: "user-1", Status: models.TaskStatusCompleted})
	svc := newTestTaskService(repo, &memActivityRepo{}, "{}")

	_, err := svc.StartFocus(context.Background(), "t1", "user-1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestFocusLifecycle(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{
		ID:     "t1",
		UserID: "user-1",
		Title:  "Deep work",
		Status: models.TaskStatusPending,
	})
	activity := &memActivityRepo{}
	svc := newTestTaskService(repo, activity, "{}")

	task, err := svc.StartFocus(context.Background(), "t1", "user-1")
	if err != nil {
		t.Fatalf("StartFocus: %v", err)
	}
	if task.Status != models.TaskStatusInProgress {
		t.Errorf("status = %q", task.Status)
	}

	task, err = svc.EndFocus(context.Background(), "t1", "user-1", 25)
	if err != nil {
		t.Fatalf("EndFocus: %v", err)
	}
	if task.TimeSpent != 25 {
		t.Errorf("timeSpent = %d, want 25", task.TimeSpent)
	}

	task, err = svc.EndFocus(context.Background(), "t1", "user-1", 10)
	if err != nil {
		t.Fatalf("second EndFocus: %v", err)
	}
	if task.TimeSpent != 35 {
		t.Errorf("timeSpent = %d, want 35", task.TimeSpent)
	}

	if len(activity.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(activity.events))
	}
	if activity.events[0].Type != models.ActivityFocusStarted ||
		activity.events[1].Type != models.ActivityFocusEnded {
		t.Errorf("event types = %q, %q", activity.events[0].Type, activity.events[1].Type)
	}
}

func TestEndFocusRejectsOutOfRangeMinutes(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{ID: "t1", UserID: "user-1", Status: models.TaskStatusInProgress})
	svc := newTestTaskService(repo, &memActivityRepo{}, "{}")

	for _, minutes := range []int{-1, config.MaxFocusMinutes + 1} {
		_, err := svc.EndFocus(context.Background(), "t1", "user-1", minutes)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("minutes %d: err = %v, want ErrValidation", minutes, err)
		}
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	repo := newMemTaskRepo()
	svc := newTestTaskService(repo, &memActivityRepo{}, "{}")

	task, err := svc.CreateTask(context.Background(), &services.CreateTaskRequest{
		UserID: "user-1",
		Title:  "  Plan sprint  ",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Title != "Plan sprint" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Priority != models.PriorityMedium || task.Bucket != models.BucketLater {
		t.Errorf("defaults = %q/%q", task.Priority, task.Bucket)
	}
	if task.Status != models.TaskStatusPending {
		t.Errorf("status = %q", task.Status)
	}
}

func TestBreakdownParsesResponse(t *testing.T) {
	reply := `{
		"steps": [
			{"id": "step_1", "title": "Open the doc", "timeEstimate": "5 min", "tip": "Just open it."},
			{"id": "step_2", "title": "Outline three sections", "timeEstimate": "10 min", "tip": null}
		],
		"encouragement": "You've got this!"
	}`
	repo := newMemTaskRepo(&models.Task{ID: "t1", UserID: "user-1", Title: "Write report"})
	svc := newTestTaskService(repo, &memActivityRepo{}, reply)

	result, err := svc.Breakdown(context.Background(), "t1", "user-1")
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if len(result.Steps) != 2 {
		t.Fatalf("steps = %d", len(result.Steps))
	}
	if result.Steps[0].Tip == nil || *result.Steps[0].Tip != "Just open it." {
		t.Errorf("tip = %v", result.Steps[0].Tip)
	}
	if result.Steps[1].Tip != nil {
		t.Errorf("null tip decoded as %v", result.Steps[1].Tip)
	}
	if result.Encouragement != "You've got this!" {
		t.Errorf("encouragement = %q", result.Encouragement)
	}
}

func TestHelpMalformedResponse(t *testing.T) {
	repo := newMemTaskRepo(&models.Task{ID: "t1", UserID: "user-1", Title: "Write report"})
	svc := newTestTaskService(repo, &memActivityRepo{}, "cannot help with that")

	_, err := svc.Help(context.Background(), "t1", "user-1")
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("err = %v, want ErrMalformedResponse", err)
	}
}

func TestBreakdownUnknownTask(t *testing.T) {
	svc := newTestTaskService(newMemTaskRepo(), &memActivityRepo{}, "{}")

	_, err := svc.Breakdown(context.Background(), "missing", "user-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
