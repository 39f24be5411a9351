package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"braindumper/internal/config"
	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
	"braindumper/internal/domain/services"
	"braindumper/internal/service/llm"
)

const breakdownPrompt = `You are a helpful task breakdown assistant. Given a task, break it down into 3-5 tiny, actionable steps that take 5-15 minutes each.

Respond in valid JSON only:
{
  "steps": [
    {
      "id": string,
      "title": string,
      "timeEstimate": string,
      "tip": string | null
    }
  ],
  "encouragement": string
}`

const helpPrompt = `You are a productivity coach. The user is stuck on a task. Give them 2-3 practical tips to get started. Be encouraging and concise.

Respond in valid JSON:
{
  "tips": [string],
  "motivation": string
}`

// taskService implements the TaskService interface
type taskService struct {
	taskRepo     repositories.TaskRepository
	activityRepo repositories.ActivityRepository
	registry     *llm.ProviderRegistry
	model        string
	logger       *slog.Logger
	now          func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repositories.TaskRepository,
	activityRepo repositories.ActivityRepository,
	registry *llm.ProviderRegistry,
	cfg *config.Config,
	logger *slog.Logger,
) services.TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
		registry:     registry,
		model:        cfg.DefaultModel,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateTask creates a standalone task
func (s *taskService) CreateTask(ctx context.Context, req *services.CreateTaskRequest) (*models.Task, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := s.now()
	task := &models.Task{
		UserID:      req.UserID,
		SessionID:   req.SessionID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    req.Priority,
		Bucket:      req.Bucket,
		Status:      models.TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Bucket == "" {
		task.Bucket = models.BucketLater
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		"id", task.ID,
		"user_id", req.UserID,
	)

	return task, nil
}

// GetTask retrieves a task by ID
func (s *taskService) GetTask(ctx context.Context, id, userID string) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id, userID)
}

// ListTasks retrieves all tasks for a user
func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	return s.taskRepo.List(ctx, userID, config.ListCap)
}

// UpdateTask applies a partial update. completedAt is stamped exactly once,
// at the transition into "completed", unless the caller supplied one.
func (s *taskService) UpdateTask(ctx context.Context, id, userID string, req *services.UpdateTaskRequest) (*models.Task, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	task, err := s.taskRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Bucket != nil {
		task.Bucket = *req.Bucket
	}

	completed := false
	if req.Status != nil && *req.Status != task.Status {
		completed = *req.Status == models.TaskStatusCompleted
		task.Status = *req.Status
	}
	if completed && task.CompletedAt == nil {
		completedAt := s.now()
		if req.CompletedAt != nil {
			completedAt = *req.CompletedAt
		}
		task.CompletedAt = &completedAt
	}
	task.UpdatedAt = s.now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	if completed {
		s.appendEvent(ctx, userID, models.ActivityTaskCompleted,
			fmt.Sprintf("Completed task: %s", task.Title))
	}

	return task, nil
}

// DeleteTask deletes a task
func (s *taskService) DeleteTask(ctx context.Context, id, userID string) error {
	if _, err := s.taskRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("task deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

// StartFocus marks a task in progress
func (s *taskService) StartFocus(ctx context.Context, id, userID string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if task.Status == models.TaskStatusCompleted {
		return nil, fmt.Errorf("%w: cannot focus on a completed task", domain.ErrValidation)
	}

	task.Status = models.TaskStatusInProgress
	task.UpdatedAt = s.now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.appendEvent(ctx, userID, models.ActivityFocusStarted,
		fmt.Sprintf("Started focusing on: %s", task.Title))

	return task, nil
}

// EndFocus adds focused minutes to a task
func (s *taskService) EndFocus(ctx context.Context, id, userID string, minutes int) (*models.Task, error) {
	if minutes < 0 || minutes > config.MaxFocusMinutes {
		return nil, fmt.Errorf("%w: minutes must be between 0 and %d", domain.ErrValidation, config.MaxFocusMinutes)
	}

	task, err := s.taskRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.TimeSpent += minutes
	task.UpdatedAt = s.now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.appendEvent(ctx, userID, models.ActivityFocusEnded,
		fmt.Sprintf("Focused for %d minutes on: %s", minutes, task.Title))

	return task, nil
}

// Breakdown asks the AI to split a task into tiny steps
func (s *taskService) Breakdown(ctx context.Context, id, userID string) (*models.BreakdownResult, error) {
	task, err := s.taskRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	completion, err := s.registry.Complete(ctx, &llm.CompletionRequest{
		System:      breakdownPrompt,
		User:        taskAIUserPrompt("Break down this task into tiny steps:", task),
		Model:       s.model,
		MaxTokens:   1000,
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("breakdown completion: %w", err)
	}

	raw, err := llm.ExtractObject(completion)
	if err != nil {
		return nil, err
	}

	var result models.BreakdownResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if result.Steps == nil {
		result.Steps = []models.BreakdownStep{}
	}

	return &result, nil
}

// Help asks the AI for tips when the user is stuck
func (s *taskService) Help(ctx context.Context, id, userID string) (*models.HelpResult, error) {
	task, err := s.taskRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	completion, err := s.registry.Complete(ctx, &llm.CompletionRequest{
		System:      helpPrompt,
		User:        taskAIUserPrompt("I'm stuck on this task:", task),
		Model:       s.model,
		MaxTokens:   500,
		Temperature: 0.8,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("help completion: %w", err)
	}

	raw, err := llm.ExtractObject(completion)
	if err != nil {
		return nil, err
	}

	var result models.HelpResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if result.Tips == nil {
		result.Tips = []string{}
	}

	return &result, nil
}

// appendEvent writes an activity event, best-effort.
func (s *taskService) appendEvent(ctx context.Context, userID, eventType, description string) {
	event := &models.ActivityEvent{
		UserID:      userID,
		Type:        eventType,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := s.activityRepo.Append(ctx, event); err != nil {
		s.logger.Warn("failed to append activity event",
			"type", eventType,
			"user_id", userID,
			"error", err,
		)
	}
}

func taskAIUserPrompt(lead string, task *models.Task) string {
	details := task.Description
	if details == "" {
		details = "No additional details"
	}
	return fmt.Sprintf("%s\n\nTask: %s\nDetails: %s", lead, task.Title, details)
}

func (s *taskService) validateCreateRequest(req *services.CreateTaskRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxTaskTitleLength),
		),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&req.Priority,
			validation.In(models.PriorityLow, models.PriorityMedium, models.PriorityHigh),
		),
		validation.Field(&req.Bucket,
			validation.In(models.BucketNow, models.BucketNext, models.BucketLater),
		),
	)
}

func (s *taskService) validateUpdateRequest(req *services.UpdateTaskRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxTaskTitleLength),
		),
		validation.Field(&req.Priority,
			validation.In(models.PriorityLow, models.PriorityMedium, models.PriorityHigh),
		),
		validation.Field(&req.Bucket,
			validation.In(models.BucketNow, models.BucketNext, models.BucketLater),
		),
		validation.Field(&req.Status,
			validation.In(models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusCompleted),
		),
	)
}

