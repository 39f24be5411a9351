package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
)

// PostgresSessionRepository implements the SessionRepository interface
type PostgresSessionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(config *RepositoryConfig) repositories.SessionRepository {
	return &PostgresSessionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new session. The caller supplies the ID (the analysis
// pipeline generates session IDs so the returned result references the row).
func (r *PostgresSessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, raw_dump, summary, sections, insights, current_focus, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	_, err := executor.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Title,
		session.RawDump,
		session.Summary,
		session.Sections,
		session.Insights,
		session.CurrentFocus,
		session.Status,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("session %s: %w", session.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by ID
func (r *PostgresSessionRepository) GetByID(ctx context.Context, id, userID string) (*models.Session, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, raw_dump, summary, sections, insights, current_focus, status, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Sessions)

	var session models.Session
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.Title,
		&session.RawDump,
		&session.Summary,
		&session.Sections,
		&session.Insights,
		&session.CurrentFocus,
		&session.Status,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &session, nil
}

// List retrieves sessions for a user, newest first, capped at limit
func (r *PostgresSessionRepository) List(ctx context.Context, userID string, limit int) ([]models.Session, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, raw_dump, summary, sections, insights, current_focus, status, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var session models.Session
		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.Title,
			&session.RawDump,
			&session.Summary,
			&session.Sections,
			&session.Insights,
			&session.CurrentFocus,
			&session.Status,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	// Return empty slice instead of nil if no sessions
	if sessions == nil {
		sessions = []models.Session{}
	}

	return sessions, nil
}

// UpdateStatus updates a session's status and updated_at timestamp
func (r *PostgresSessionRepository) UpdateStatus(ctx context.Context, id, userID, status string) (*models.Session, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, status, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update session status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id, userID)
}

// Delete removes a session
func (r *PostgresSessionRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Sessions)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
