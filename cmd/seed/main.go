package main

import (
	"context"
	"flag"
	"log"

	"braindumper/internal/config"
	"braindumper/internal/repository/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before creating the schema (fresh start)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: Cannot run --drop-tables in production environment")
	}

	log.Printf("Setting up schema (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	_, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	if err != nil {
		return err
	}

	// Session IDs are supplied by the analysis pipeline (sess_<millis>),
	// so the column is TEXT rather than a generated UUID.
	createSessions := `
		CREATE TABLE IF NOT EXISTS ` + tables.Sessions + ` (
			id TEXT PRIMARY KEY,
			user_id UUID NOT NULL,
			title VARCHAR(255) NOT NULL,
			raw_dump TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			sections TEXT NOT NULL DEFAULT '[]',
			insights TEXT NOT NULL DEFAULT '[]',
			current_focus TEXT NOT NULL DEFAULT '',
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createSessions); err != nil {
		return err
	}

	// session_id is a weak back-reference: deleting a session keeps its
	// tasks, so no foreign key.
	createTasks := `
		CREATE TABLE IF NOT EXISTS ` + tables.Tasks + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			session_id TEXT,
			title VARCHAR(500) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority VARCHAR(20) NOT NULL DEFAULT 'medium',
			bucket VARCHAR(20) NOT NULL DEFAULT 'later',
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			time_spent INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)
	`
	if _, err := pool.Exec(ctx, createTasks); err != nil {
		return err
	}

	createIdeas := `
		CREATE TABLE IF NOT EXISTS ` + tables.Ideas + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			title VARCHAR(255) NOT NULL,
			raw_input TEXT NOT NULL DEFAULT '',
			generated_markdown TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createIdeas); err != nil {
		return err
	}

	createActivity := `
		CREATE TABLE IF NOT EXISTS ` + tables.Activity + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			type VARCHAR(50) NOT NULL,
			description VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createActivity); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `sessions_user_created ON ` + tables.Sessions + `(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `tasks_user_created ON ` + tables.Tasks + `(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `tasks_session ON ` + tables.Tasks + `(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `tasks_status ON ` + tables.Tasks + `(user_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `tasks_bucket ON ` + tables.Tasks + `(user_id, bucket)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `ideas_user_created ON ` + tables.Ideas + `(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `activity_user_created ON ` + tables.Activity + `(user_id, created_at DESC)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Activity,
		tables.Ideas,
		tables.Tasks,
		tables.Sessions,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  dropped %s", table)
	}

	return nil
}
