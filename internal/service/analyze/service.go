package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"braindumper/internal/config"
	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
	"braindumper/internal/domain/services"
	"braindumper/internal/service/llm"
)

// analyzeService implements the AnalyzeService interface
type analyzeService struct {
	sessionRepo  repositories.SessionRepository
	taskRepo     repositories.TaskRepository
	activityRepo repositories.ActivityRepository
	txManager    repositories.TransactionManager
	registry     *llm.ProviderRegistry
	model        string
	logger       *slog.Logger
	now          func() time.Time
}

// NewService creates a new analyze service
func NewService(
	sessionRepo repositories.SessionRepository,
	taskRepo repositories.TaskRepository,
	activityRepo repositories.ActivityRepository,
	txManager repositories.TransactionManager,
	registry *llm.ProviderRegistry,
	cfg *config.Config,
	logger *slog.Logger,
) services.AnalyzeService {
	return &analyzeService{
		sessionRepo:  sessionRepo,
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		registry:     registry,
		model:        cfg.DefaultModel,
		logger:       logger,
		now:          time.Now,
	}
}

// AnalyzeDump sends the dump to the LLM, normalizes the response, and
// persists the resulting session and tasks
func (s *analyzeService) AnalyzeDump(ctx context.Context, req *services.AnalyzeRequest) (*models.AnalysisResult, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	text := strings.TrimSpace(req.Text)

	completion, err := s.registry.Complete(ctx, &llm.CompletionRequest{
		System:      systemPrompt,
		User:        fmt.Sprintf("Please analyze and organize this brain dump:\n\n%s", text),
		Model:       s.model,
		MaxTokens:   4000,
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze completion: %w", err)
	}

	raw, err := llm.ExtractObject(completion)
	if err != nil {
		s.logger.Warn("unparseable analysis response",
			"user_id", req.UserID,
			"length", len(completion),
		)
		return nil, err
	}

	result := Normalize(raw, s.now())

	if err := s.persist(ctx, req.UserID, text, result); err != nil {
		return nil, fmt.Errorf("persist analysis: %w", err)
	}

	s.logger.Info("brain dump analyzed",
		"session_id", result.SessionID,
		"user_id", req.UserID,
		"tasks", len(result.Tasks),
	)

	return result, nil
}

// persist writes the session and its tasks in one transaction, then appends
// a session_created event. The event is best-effort: a failed append does
// not fail the analysis.
func (s *analyzeService) persist(ctx context.Context, userID, text string, result *models.AnalysisResult) error {
	now := s.now()

	sections := mustJSON(result.Sections)
	if len(sections) > config.MaxSectionsLength {
		s.logger.Warn("sections exceed storage cap, dropping",
			"session_id", result.SessionID,
			"length", len(sections),
		)
		sections = "[]"
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		session := &models.Session{
			ID:           result.SessionID,
			UserID:       userID,
			Title:        sessionTitle(result.Summary),
			RawDump:      text,
			Summary:      result.Summary,
			Sections:     sections,
			Insights:     mustJSON(result.Insights),
			CurrentFocus: mustJSON(result.CurrentFocus),
			Status:       models.SessionStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.sessionRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		for _, at := range result.Tasks {
			task := &models.Task{
				UserID:      userID,
				SessionID:   result.SessionID,
				Title:       at.Title,
				Description: at.Description,
				Priority:    at.Priority,
				Bucket:      at.Bucket,
				Status:      persistedStatus(at.Status),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if task.Status == models.TaskStatusCompleted {
				completedAt := now
				task.CompletedAt = &completedAt
			}
			if err := s.taskRepo.Create(ctx, task); err != nil {
				return fmt.Errorf("create task: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	event := &models.ActivityEvent{
		UserID:      userID,
		Type:        models.ActivitySessionCreated,
		Description: fmt.Sprintf("Organized a brain dump into %d tasks", len(result.Tasks)),
		CreatedAt:   now,
	}
	if err := s.activityRepo.Append(ctx, event); err != nil {
		s.logger.Warn("failed to append activity event",
			"type", event.Type,
			"user_id", userID,
			"error", err,
		)
	}

	return nil
}

// persistedStatus maps the model's task status vocabulary to stored values.
func persistedStatus(analysisStatus string) string {
	switch analysisStatus {
	case models.AnalysisStatusDone:
		return models.TaskStatusCompleted
	case models.AnalysisStatusInProgress:
		return models.TaskStatusInProgress
	default:
		return models.TaskStatusPending
	}
}

// mustJSON serializes a normalized value for storage in a text column.
// Normalized values are plain data and always marshal.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// sessionTitle derives a short session title from the analysis summary.
func sessionTitle(summary string) string {
	title := strings.TrimSpace(summary)
	if title == "" {
		return "Brain dump"
	}
	if utf8.RuneCountInString(title) > config.MaxTitleLength {
		runes := []rune(title)
		title = string(runes[:config.MaxTitleLength-3]) + "..."
	}
	return title
}

func (s *analyzeService) validateRequest(req *services.AnalyzeRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Text,
			validation.Required,
			validation.Length(1, config.MaxDumpLength),
			validation.By(validateNotBlank),
		),
	)
}

func validateNotBlank(value interface{}) error {
	text, ok := value.(string)
	if !ok {
		return fmt.Errorf("text must be a string")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be blank")
	}
	return nil
}
