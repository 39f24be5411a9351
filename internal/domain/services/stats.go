package services

import (
	"context"

	"braindumper/internal/domain/models"
)

// StatsService computes the dashboard overview for a user
type StatsService interface {
	// Dashboard fetches the user's collections and composes derived
	// statistics. Fails as a unit with domain.ErrIncompleteInput if any
	// collection read fails; no partial stats are ever returned.
	Dashboard(ctx context.Context, userID string) (*models.DashboardStats, error)
}
