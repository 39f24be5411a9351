package service

import (
	"context"
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

const generatePrompt = `You are an expert product strategist and technical architect. Transform the user's raw idea into a beautifully structured Product & Flow Specification document.

## 📋 STRICT OUTPUT FORMAT (Follow Exactly):

# 🚀 [Product Name]
> [One-line tagline describing the product]

---

## 🎯 Goal & Principles

**Mission:** [Core mission statement]

**Guiding Principles:**
- 🔹 [Principle 1]
- 🔹 [Principle 2]
- 🔹 [Principle 3]

---

## 💡 Core Concepts

| Concept | Description |
|---------|-------------|
| 📦 [Entity 1] | [What it is] |
| 📦 [Entity 2] | [What it is] |

---

## 🗺️ App Structure & Navigation

- 🏠 **Home** - [Description]
- 📱 **Screen 2** - [Description]
- ⚙️ **Settings** - [Description]

---

## 🔄 User Flows

### Flow 1: [Flow Name] 📝
1. ➡️ User does [action]
2. ➡️ System responds with [response]
3. ✅ Result: [outcome]

---

## 📱 Screen Specifications

### [Screen Name] 🖥️
- **Header:** [Description]
- **Main Content:** [Description]
- **Actions:** [Buttons/interactions]

---

## ⚙️ Business Rules & Logic

- ✅ [Rule 1]
- ✅ [Rule 2]
- ⚠️ [Constraint/Limitation]

---

## 🚨 Edge Cases & Error Handling

| Scenario | Handling |
|----------|----------|
| ❌ [Error case] | [How to handle] |
| ⚠️ [Edge case] | [Solution] |

---

## 🔮 Future Enhancements (V2+)

- 💎 [Feature 1]
- 💎 [Feature 2]
- 💎 [Feature 3]

---

## ✨ Implementation Summary

**Quick Start Checklist:**
- [ ] [Task 1]
- [ ] [Task 2]
- [ ] [Task 3]

**Tech Stack:** [Brief mention of recommended stack]

---

## 📝 FORMATTING RULES (MUST FOLLOW):

1. **ALWAYS use markdown headings** with # for main title, ## for sections
2. **ALWAYS use emojis** at the start of each section heading
3. **ALWAYS use bullet points** (- ) for lists, NEVER plain text paragraphs for lists
4. **ALWAYS use tables** for comparisons and structured data
5. **ALWAYS use horizontal rules** (---) between major sections
6. **ALWAYS use bold** (**text**) for emphasis
7. **ALWAYS use numbered lists** (1. 2. 3.) for sequential steps
8. **Use checkboxes** (- [ ]) for action items
9. **Use blockquotes** (>) for taglines or important notes
10. **Keep paragraphs short** - 2-3 sentences max

## ❌ NEVER DO:
- No code blocks or setup instructions
- No package.json or npm commands
- No environment configuration
- No lengthy technical implementation details
- No plain text walls without formatting

## ✅ ALWAYS DO:
- Output in English regardless of input language
- Be specific and actionable
- Think about user experience
- Include edge cases
- Make it visually scannable`

// ideaService implements the IdeaService interface
type ideaService struct {
	ideaRepo     repositories.IdeaRepository
	activityRepo repositories.ActivityRepository
	registry     *llm.ProviderRegistry
	model        string
	logger       *slog.Logger
	now          func() time.Time
}

// NewIdeaService creates a new idea service
func NewIdeaService(
	ideaRepo repositories.IdeaRepository,
	activityRepo repositories.ActivityRepository,
	registry *llm.ProviderRegistry,
	cfg *config.Config,
	logger *slog.Logger,
) services.IdeaService {
	return &ideaService{
		ideaRepo:     ideaRepo,
		activityRepo: activityRepo,
		registry:     registry,
		model:        cfg.DefaultModel,
		logger:       logger,
		now:          time.Now,
	}
}

// GenerateDocument produces a specification document from a raw idea.
// Nothing is persisted until the user saves it.
func (s *ideaService) GenerateDocument(ctx context.Context, req *services.GenerateIdeaRequest) (*services.GeneratedDocument, error) {
	if err := s.validateGenerateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	markdown, err := s.registry.Complete(ctx, &llm.CompletionRequest{
		System:      generatePrompt,
		User:        fmt.Sprintf("Transform this idea into a comprehensive Product & Flow Specification:\n\n%s", strings.TrimSpace(req.Input)),
		Model:       s.model,
		MaxTokens:   8000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate completion: %w", err)
	}

	if strings.TrimSpace(markdown) == "" {
		return nil, fmt.Errorf("%w: empty document", domain.ErrMalformedResponse)
	}

	s.logger.Info("idea document generated",
		"user_id", req.UserID,
		"length", len(markdown),
	)

	return &services.GeneratedDocument{
		Title:    documentTitle(markdown, req.Input),
		Markdown: markdown,
	}, nil
}

// CreateIdea saves a generated document
func (s *ideaService) CreateIdea(ctx context.Context, req *services.CreateIdeaRequest) (*models.Idea, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := s.now()
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = documentTitle(req.GeneratedMarkdown, req.RawInput)
	}

	idea := &models.Idea{
		UserID:            req.UserID,
		Title:             title,
		RawInput:          req.RawInput,
		GeneratedMarkdown: req.GeneratedMarkdown,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, err
	}

	event := &models.ActivityEvent{
		UserID:      req.UserID,
		Type:        models.ActivityIdeaCreated,
		Description: fmt.Sprintf("Saved idea: %s", idea.Title),
		CreatedAt:   now,
	}
	if err := s.activityRepo.Append(ctx, event); err != nil {
		s.logger.Warn("failed to append activity event",
			"type", event.Type,
			"user_id", req.UserID,
			"error", err,
		)
	}

	s.logger.Info("idea created",
		"id", idea.ID,
		"user_id", req.UserID,
	)

	return idea, nil
}

// GetIdea retrieves an idea by ID
func (s *ideaService) GetIdea(ctx context.Context, id, userID string) (*models.Idea, error) {
	return s.ideaRepo.GetByID(ctx, id, userID)
}

// ListIdeas retrieves all ideas for a user
func (s *ideaService) ListIdeas(ctx context.Context, userID string) ([]models.Idea, error) {
	return s.ideaRepo.List(ctx, userID, config.IdeaListCap)
}

// DeleteIdea deletes an idea
func (s *ideaService) DeleteIdea(ctx context.Context, id, userID string) error {
	if _, err := s.ideaRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.ideaRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("idea deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

// documentTitle extracts a title from the document's first # heading,
// falling back to the raw input.
func documentTitle(markdown, rawInput string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			if title := strings.TrimSpace(after); title != "" {
				return truncateTitle(title)
			}
		}
	}
	if title := strings.TrimSpace(rawInput); title != "" {
		return truncateTitle(title)
	}
	return "Untitled idea"
}

func truncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= config.MaxTitleLength {
		return title
	}
	runes := []rune(title)
	return string(runes[:config.MaxTitleLength-3]) + "..."
}

func (s *ideaService) validateGenerateRequest(req *services.GenerateIdeaRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Input,
			validation.Required,
			validation.Length(1, config.MaxIdeaInputLength),
		),
	)
}

func (s *ideaService) validateCreateRequest(req *services.CreateIdeaRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.RawInput,
			validation.Required,
			validation.Length(1, config.MaxIdeaInputLength),
		),
		validation.Field(&req.GeneratedMarkdown, validation.Required),
	)
}
