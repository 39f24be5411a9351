package services

import (
	"context"

	"braindumper/internal/domain/models"
)

// GenerateIdeaRequest carries a raw idea description for document generation
type GenerateIdeaRequest struct {
	UserID string `json:"-"`
	Input  string `json:"input"`
}

// GeneratedDocument is the result of idea document generation, before the
// user decides to save it
type GeneratedDocument struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// CreateIdeaRequest represents a request to save a generated document
type CreateIdeaRequest struct {
	UserID            string `json:"-"`
	Title             string `json:"title"`
	RawInput          string `json:"rawInput"`
	GeneratedMarkdown string `json:"generatedMarkdown"`
}

// IdeaService defines business logic operations for idea documents
type IdeaService interface {
	// GenerateDocument produces a formatted specification document from a
	// short idea description. Nothing is persisted.
	GenerateDocument(ctx context.Context, req *GenerateIdeaRequest) (*GeneratedDocument, error)

	// CreateIdea saves a generated document
	CreateIdea(ctx context.Context, req *CreateIdeaRequest) (*models.Idea, error)

	// GetIdea retrieves an idea by ID
	GetIdea(ctx context.Context, id, userID string) (*models.Idea, error)

	// ListIdeas retrieves all ideas for a user, newest first
	ListIdeas(ctx context.Context, userID string) ([]models.Idea, error)

	// DeleteIdea deletes an idea
	DeleteIdea(ctx context.Context, id, userID string) error
}
