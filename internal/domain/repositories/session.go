package repositories

import (
	"context"

	"braindumper/internal/domain/models"
)

// SessionRepository defines data access operations for brain-dump sessions
type SessionRepository interface {
	// Create persists a new session. The caller supplies the ID.
	Create(ctx context.Context, session *models.Session) error

	// GetByID retrieves a session by ID, scoped to the owning user
	GetByID(ctx context.Context, id, userID string) (*models.Session, error)

	// List retrieves sessions for a user, newest first, capped at limit
	List(ctx context.Context, userID string, limit int) ([]models.Session, error)

	// UpdateStatus updates a session's status (active/archived)
	UpdateStatus(ctx context.Context, id, userID, status string) (*models.Session, error)

	// Delete removes a session
	Delete(ctx context.Context, id, userID string) error
}
