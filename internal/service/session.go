package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"braindumper/internal/config"
	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
	"braindumper/internal/domain/services"
)

// sessionService implements the SessionService interface
type sessionService struct {
	sessionRepo repositories.SessionRepository
	logger      *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repositories.SessionRepository,
	logger *slog.Logger,
) services.SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// GetSession retrieves a session by ID
func (s *sessionService) GetSession(ctx context.Context, id, userID string) (*models.Session, error) {
	return s.sessionRepo.GetByID(ctx, id, userID)
}

// ListSessions retrieves all sessions for a user
func (s *sessionService) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	return s.sessionRepo.List(ctx, userID, config.ListCap)
}

// UpdateSession updates a session's status
func (s *sessionService) UpdateSession(ctx context.Context, id, userID string, req *services.UpdateSessionRequest) (*models.Session, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	session, err := s.sessionRepo.UpdateStatus(ctx, id, userID, req.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session updated",
		"id", id,
		"status", req.Status,
		"user_id", userID,
	)

	return session, nil
}

// DeleteSession deletes a session. Tasks keep their weak session reference;
// they are not deleted with it.
func (s *sessionService) DeleteSession(ctx context.Context, id, userID string) error {
	if _, err := s.sessionRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("session deleted",
		"id", id,
		"user_id", userID,
	)

	return nil
}

func (s *sessionService) validateUpdateRequest(req *services.UpdateSessionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Status,
			validation.Required,
			validation.In(models.SessionStatusActive, models.SessionStatusArchived),
		),
	)
}
