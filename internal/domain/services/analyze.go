package services

import (
	"context"

	"braindumper/internal/domain/models"
)

// AnalyzeRequest carries a raw brain dump to be analyzed
type AnalyzeRequest struct {
	UserID string `json:"-"`
	Text   string `json:"text"`
}

// AnalyzeService turns unstructured brain dumps into structured results
type AnalyzeService interface {
	// AnalyzeDump sends the dump to the LLM, normalizes the response, and
	// persists the resulting session and tasks for the user.
	// Returns domain.ErrMalformedResponse if the model output is unparseable.
	AnalyzeDump(ctx context.Context, req *AnalyzeRequest) (*models.AnalysisResult, error)
}
