package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
)

// PostgresActivityRepository implements the ActivityRepository interface.
// The activity log is append-only; there is no update or delete.
type PostgresActivityRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(config *RepositoryConfig) repositories.ActivityRepository {
	return &PostgresActivityRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Append adds an event to the log and fills in its generated ID
func (r *PostgresActivityRepository) Append(ctx context.Context, event *models.ActivityEvent) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, type, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, r.tables.Activity)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		event.UserID,
		event.Type,
		event.Description,
		event.CreatedAt,
	).Scan(&event.ID)

	if err != nil {
		return fmt.Errorf("append activity: %w", err)
	}

	return nil
}

// Recent retrieves the most recent events for a user, newest first
func (r *PostgresActivityRepository) Recent(ctx context.Context, userID string, limit int) ([]models.ActivityEvent, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, type, description, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, r.tables.Activity)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var events []models.ActivityEvent
	for rows.Next() {
		var event models.ActivityEvent
		err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Type,
			&event.Description,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}

	if events == nil {
		events = []models.ActivityEvent{}
	}

	return events, nil
}
