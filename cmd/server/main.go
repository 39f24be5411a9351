package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"braindumper/internal/auth"
	"braindumper/internal/config"
	"braindumper/internal/handler"
	"braindumper/internal/middleware"
	"braindumper/internal/repository/postgres"
	"braindumper/internal/service"
	"braindumper/internal/service/analyze"
	serviceLLM "braindumper/internal/service/llm"
	"braindumper/internal/service/llm/providers"
	"braindumper/internal/service/stats"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// JWT verifier backed by the auth provider's JWKS endpoint
	jwtVerifier, err := auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	sessionRepo := postgres.NewSessionRepository(repoConfig)
	taskRepo := postgres.NewTaskRepository(repoConfig)
	ideaRepo := postgres.NewIdeaRepository(repoConfig)
	activityRepo := postgres.NewActivityRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Initialize capability registry
	capabilityRegistry, err := serviceLLM.NewCapabilityRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize capability registry: %v", err)
	}
	logger.Info("capability registry initialized")

	// Setup LLM providers
	providerRegistry, err := providers.Setup(cfg, capabilityRegistry, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM providers: %v", err)
	}

	// Create services
	analyzeService := analyze.NewService(sessionRepo, taskRepo, activityRepo, txManager, providerRegistry, cfg, logger)
	sessionService := service.NewSessionService(sessionRepo, logger)
	taskService := service.NewTaskService(taskRepo, activityRepo, providerRegistry, cfg, logger)
	ideaService := service.NewIdeaService(ideaRepo, activityRepo, providerRegistry, cfg, logger)
	statsService := stats.NewService(sessionRepo, taskRepo, ideaRepo, activityRepo, logger)

	// Create handlers
	analyzeHandler := handler.NewAnalyzeHandler(analyzeService, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, logger)
	taskHandler := handler.NewTaskHandler(taskService, logger)
	ideaHandler := handler.NewIdeaHandler(ideaService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)
	modelsHandler := handler.NewModelsHandler(capabilityRegistry, providerRegistry, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.Health)

	// Analysis route
	mux.HandleFunc("POST /api/dumps/analyze", analyzeHandler.AnalyzeDump)

	// Session routes
	mux.HandleFunc("GET /api/sessions", sessionHandler.ListSessions)
	mux.HandleFunc("GET /api/sessions/{id}", sessionHandler.GetSession)
	mux.HandleFunc("PATCH /api/sessions/{id}", sessionHandler.UpdateSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", sessionHandler.DeleteSession)

	// Task routes
	mux.HandleFunc("GET /api/tasks", taskHandler.ListTasks)
	mux.HandleFunc("POST /api/tasks", taskHandler.CreateTask)
	mux.HandleFunc("GET /api/tasks/{id}", taskHandler.GetTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", taskHandler.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", taskHandler.DeleteTask)
	mux.HandleFunc("POST /api/tasks/{id}/focus/start", taskHandler.StartFocus)
	mux.HandleFunc("POST /api/tasks/{id}/focus/end", taskHandler.EndFocus)
	mux.HandleFunc("POST /api/tasks/{id}/breakdown", taskHandler.Breakdown)
	mux.HandleFunc("POST /api/tasks/{id}/help", taskHandler.Help)

	// Idea routes
	mux.HandleFunc("POST /api/ideas/generate", ideaHandler.GenerateDocument)
	mux.HandleFunc("POST /api/ideas", ideaHandler.CreateIdea)
	mux.HandleFunc("GET /api/ideas", ideaHandler.ListIdeas)
	mux.HandleFunc("GET /api/ideas/{id}", ideaHandler.GetIdea)
	mux.HandleFunc("DELETE /api/ideas/{id}", ideaHandler.DeleteIdea)

	// Model catalog
	mux.HandleFunc("GET /api/models", modelsHandler.ListModels)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard/stats", statsHandler.Dashboard)

	// Build middleware chain, applied in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestID → Auth → Routes
	var root http.Handler = mux
	root = middleware.AuthMiddleware(jwtVerifier)(root)
	root = middleware.RequestID()(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
