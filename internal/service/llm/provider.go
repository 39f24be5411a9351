package llm

import "context"

// CompletionRequest is a single-shot generation request to an AI vendor.
type CompletionRequest struct {
	System      string  // system prompt
	User        string  // user prompt
	Model       string  // vendor model ID; empty means the provider default
	MaxTokens   int     // maximum output tokens
	Temperature float64 // sampling temperature
	JSONOutput  bool    // ask the vendor for a native JSON response when supported
}

// Provider is a single AI vendor capable of completing a prompt.
// Implementations own their HTTP transport, retries, and authentication.
type Provider interface {
	// Name returns the provider identifier (e.g. "gemini", "openrouter")
	Name() string

	// Complete performs one generation request and returns the raw text of
	// the model's reply.
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
