package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
)

// PostgresTaskRepository implements the TaskRepository interface
type PostgresTaskRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(config *RepositoryConfig) repositories.TaskRepository {
	return &PostgresTaskRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new task and fills in its generated ID
func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, session_id, title, description, priority, bucket, status, time_spent, created_at, updated_at, completed_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		task.UserID,
		task.SessionID,
		task.Title,
		task.Description,
		task.Priority,
		task.Bucket,
		task.Status,
		task.TimeSpent,
		task.CreatedAt,
		task.UpdatedAt,
		task.CompletedAt,
	).Scan(&task.ID)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

const taskColumns = `id, user_id, COALESCE(session_id, ''), title, description, priority, bucket, status, time_spent, created_at, updated_at, completed_at`

func scanTask(row interface{ Scan(dest ...any) error }, task *models.Task) error {
	return row.Scan(
		&task.ID,
		&task.UserID,
		&task.SessionID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Bucket,
		&task.Status,
		&task.TimeSpent,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.CompletedAt,
	)
}

// GetByID retrieves a task by ID
func (r *PostgresTaskRepository) GetByID(ctx context.Context, id, userID string) (*models.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, taskColumns, r.tables.Tasks)

	var task models.Task
	executor := GetExecutor(ctx, r.pool)
	if err := scanTask(executor.QueryRow(ctx, query, id, userID), &task); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &task, nil
}

// List retrieves tasks for a user, newest first, capped at limit
func (r *PostgresTaskRepository) List(ctx context.Context, userID string, limit int) ([]models.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, taskColumns, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

// ListBySession retrieves the tasks created from one session, in display order
func (r *PostgresTaskRepository) ListBySession(ctx context.Context, sessionID, userID string) ([]models.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE session_id = $1 AND user_id = $2
		ORDER BY created_at ASC
	`, taskColumns, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sessionID, userID)
	if err != nil {
		return nil, fmt.Errorf("list session tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

// Update persists mutable task fields
func (r *PostgresTaskRepository) Update(ctx context.Context, task *models.Task) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, priority = $3, bucket = $4, status = $5, time_spent = $6, completed_at = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		task.Title,
		task.Description,
		task.Priority,
		task.Bucket,
		task.Status,
		task.TimeSpent,
		task.CompletedAt,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a task
func (r *PostgresTaskRepository) Delete(ctx context.Context, id, userID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
