package services

import (
	"context"

	"braindumper/internal/domain/models"
)

// UpdateSessionRequest represents a request to update a session.
// Only the status may change after creation.
type UpdateSessionRequest struct {
	Status string `json:"status"`
}

// SessionService defines business logic operations for sessions
type SessionService interface {
	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, id, userID string) (*models.Session, error)

	// ListSessions retrieves all sessions for a user, newest first
	ListSessions(ctx context.Context, userID string) ([]models.Session, error)

	// UpdateSession updates a session's status
	UpdateSession(ctx context.Context, id, userID string, req *UpdateSessionRequest) (*models.Session, error)

	// DeleteSession deletes a session
	DeleteSession(ctx context.Context, id, userID string) error
}
