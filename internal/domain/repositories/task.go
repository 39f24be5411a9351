package repositories

import (
	"context"

	"braindumper/internal/domain/models"
)

// TaskRepository defines data access operations for tasks
type TaskRepository interface {
	// Create persists a new task and fills in its generated ID
	Create(ctx context.Context, task *models.Task) error

	// GetByID retrieves a task by ID, scoped to the owning user
	GetByID(ctx context.Context, id, userID string) (*models.Task, error)

	// List retrieves tasks for a user, newest first, capped at limit
	List(ctx context.Context, userID string, limit int) ([]models.Task, error)

	// ListBySession retrieves the tasks created from one session
	ListBySession(ctx context.Context, sessionID, userID string) ([]models.Task, error)

	// Update persists mutable task fields (title, description, priority,
	// bucket, status, time spent, completed_at, updated_at)
	Update(ctx context.Context, task *models.Task) error

	// Delete removes a task
	Delete(ctx context.Context, id, userID string) error
}
