package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/services"
)

type memSessionRepo struct {
	sessions map[string]*models.Session
	deleted  []string
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*models.Session)}
}

func (r *memSessionRepo) Create(ctx context.Context, session *models.Session) error {
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *memSessionRepo) GetByID(ctx context.Context, id, userID string) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) List(ctx context.Context, userID string, limit int) ([]models.Session, error) {
	var out []models.Session
	for _, s := range r.sessions {
		if s.UserID == userID && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSessionRepo) UpdateStatus(ctx context.Context, id, userID, status string) (*models.Session, error) {
	s, ok := r.sessions[id]
	if !ok || s.UserID != userID {
		return nil, domain.ErrNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	cp := *s
	return &cp, nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id, userID string) error {
	s, ok := r.sessions[id]
	if !ok || s.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.sessions, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func TestSessionService_UpdateSession(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "archive", status: models.SessionStatusArchived},
		{name: "reactivate", status: models.SessionStatusActive},
		{name: "unknown status rejected", status: "deleted", wantErr: domain.ErrValidation},
		{name: "empty status rejected", status: "", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemSessionRepo()
			repo.Create(context.Background(), &models.Session{
				ID:     "sess_1",
				UserID: "user-1",
				Status: models.SessionStatusActive,
			})

			svc := NewSessionService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

			got, err := svc.UpdateSession(context.Background(), "sess_1", "user-1", &services.UpdateSessionRequest{Status: tt.status})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateSession() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateSession() error = %v", err)
			}
			if got.Status != tt.status {
				t.Errorf("Status = %q, want %q", got.Status, tt.status)
			}
		})
	}
}

func TestSessionService_DeleteSession(t *testing.T) {
	repo := newMemSessionRepo()
	repo.Create(context.Background(), &models.Session{
		ID:     "sess_1",
		UserID: "user-1",
		Status: models.SessionStatusActive,
	})

	svc := NewSessionService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := svc.DeleteSession(context.Background(), "sess_1", "user-1"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "sess_1" {
		t.Errorf("deleted = %v, want [sess_1]", repo.deleted)
	}
}

func TestSessionService_DeleteSession_NotFound(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := svc.DeleteSession(context.Background(), "sess_missing", "user-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("DeleteSession() error = %v, want ErrNotFound", err)
	}
}

func TestSessionService_DeleteSession_WrongUser(t *testing.T) {
	repo := newMemSessionRepo()
	repo.Create(context.Background(), &models.Session{
		ID:     "sess_1",
		UserID: "user-1",
		Status: models.SessionStatusActive,
	})

	svc := NewSessionService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := svc.DeleteSession(context.Background(), "sess_1", "user-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("DeleteSession() error = %v, want ErrNotFound", err)
	}
	if len(repo.deleted) != 0 {
		t.Errorf("deleted = %v, want none", repo.deleted)
	}
}
