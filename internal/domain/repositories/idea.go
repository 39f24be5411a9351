package repositories

import (
	"context"

	"braindumper/internal/domain/models"
)

// IdeaRepository defines data access operations for saved idea documents
type IdeaRepository interface {
	// Create persists a new idea and fills in its generated ID
	Create(ctx context.Context, idea *models.Idea) error

	// GetByID retrieves an idea by ID, scoped to the owning user
	GetByID(ctx context.Context, id, userID string) (*models.Idea, error)

	// List retrieves ideas for a user, newest first, capped at limit
	List(ctx context.Context, userID string, limit int) ([]models.Idea, error)

	// Delete removes an idea
	Delete(ctx context.Context, id, userID string) error
}
