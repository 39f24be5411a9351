package repositories

import (
	"context"

	"braindumper/internal/domain/models"
)

// ActivityRepository defines data access for the append-only activity log
type ActivityRepository interface {
	// Append adds an event to the log and fills in its generated ID
	Append(ctx context.Context, event *models.ActivityEvent) error

	// Recent retrieves the most recent events for a user, newest first
	Recent(ctx context.Context, userID string, limit int) ([]models.ActivityEvent, error)
}
