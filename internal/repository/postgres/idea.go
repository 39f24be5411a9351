package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
)

// PostgresIdeaRepository implements the IdeaRepository interface
type PostgresIdeaRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(config *RepositoryConfig) repositories.IdeaRepository {
	return &PostgresIdeaRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new idea and fills in its generated ID
func (r *PostgresIdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, title, raw_input, generated_markdown, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		idea.UserID,
		idea.Title,
		idea.RawInput,
		idea.GeneratedMarkdown,
		idea.CreatedAt,
		idea.UpdatedAt,
	).Scan(&idea.ID)

	if err != nil {
		return fmt.Errorf("create idea: %w", err)
	}

	return nil
}

// GetByID retrieves an idea by ID
func (r *PostgresIdeaRepository) GetByID(ctx context.Context, id, userID string) (*models.Idea, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, raw_input, generated_markdown, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Ideas)

	var idea models.Idea
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&idea.ID,
		&idea.UserID,
		&idea.Title,
		&idea.RawInput,
		&idea.GeneratedMarkdown,
		&idea.CreatedAt,
		&idea.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get idea: %w", err)
	}

	return &idea, nil
}

// List retrieves ideas for a user, newest first, capped at limit
func (r *PostgresIdeaRepository) List(ctx context.Context, userID string, limit int) ([]models.Idea, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, raw_input, generated_markdown, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var idea models.Idea
		err := rows.Scan(
			&idea.ID,
			&idea.UserID,
			&idea.Title,
			&idea.RawInput,
			&idea.GeneratedMarkdown,
			&idea.CreatedAt,
			&idea.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, idea)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ideas: %w", err)
	}

	if ideas == nil {
		ideas = []models.Idea{}
	}

	return ideas, nil
}

// Delete removes an idea
func (r *PostgresIdeaRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Ideas)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
