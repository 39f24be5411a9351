package services

import (
	"context"
	"time"

	"braindumper/internal/domain/models"
)

// CreateTaskRequest represents a request to create a standalone task
type CreateTaskRequest struct {
	UserID      string `json:"-"`
	SessionID   string `json:"sessionId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Bucket      string `json:"bucket"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are left
// unchanged. CompletedAt is honored only on the transition into "completed";
// when absent it is stamped by the service.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	Bucket      *string    `json:"bucket"`
	Status      *string    `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
}

// TaskService defines business logic operations for tasks
type TaskService interface {
	// CreateTask creates a standalone task
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*models.Task, error)

	// GetTask retrieves a task by ID
	GetTask(ctx context.Context, id, userID string) (*models.Task, error)

	// ListTasks retrieves all tasks for a user, newest first
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)

	// UpdateTask applies a partial update, handling status transitions
	UpdateTask(ctx context.Context, id, userID string, req *UpdateTaskRequest) (*models.Task, error)

	// DeleteTask deletes a task
	DeleteTask(ctx context.Context, id, userID string) error

	// StartFocus marks a task in progress and logs a focus_started event
	StartFocus(ctx context.Context, id, userID string) (*models.Task, error)

	// EndFocus adds focused minutes to a task and logs a focus_ended event
	EndFocus(ctx context.Context, id, userID string, minutes int) (*models.Task, error)

	// Breakdown asks the AI to split a task into tiny steps
	Breakdown(ctx context.Context, id, userID string) (*models.BreakdownResult, error)

	// Help asks the AI for tips when the user is stuck on a task
	Help(ctx context.Context, id, userID string) (*models.HelpResult, error)
}
