package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoProvider indicates no AI provider is configured or reachable.
var ErrNoProvider = errors.New("no AI provider available")

// ProviderRegistry holds the configured providers and a fallback order.
// Completion requests go to the providers in order; the first success wins.
type ProviderRegistry struct {
	providers    map[string]Provider
	order        []string
	capabilities *CapabilityRegistry
	logger       *slog.Logger
}

// NewProviderRegistry creates an empty registry. The capability registry is
// consulted to keep requested model IDs from leaking across vendors.
func NewProviderRegistry(capabilities *CapabilityRegistry, logger *slog.Logger) *ProviderRegistry {
	return &ProviderRegistry{
		providers:    make(map[string]Provider),
		capabilities: capabilities,
		logger:       logger,
	}
}

// Register adds a provider at the end of the fallback order
func (r *ProviderRegistry) Register(p Provider) {
	r.providers[p.Name()] = p
	r.order = append(r.order, p.Name())
}

// Get returns a provider by name, or nil if not registered
func (r *ProviderRegistry) Get(name string) Provider {
	return r.providers[name]
}

// Names returns the registered provider names in fallback order
func (r *ProviderRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Complete tries each provider in fallback order until one succeeds.
// A context cancellation stops the fallback chain immediately.
func (r *ProviderRegistry) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	if len(r.order) == 0 {
		return "", ErrNoProvider
	}

	var lastErr error
	for _, name := range r.order {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		text, err := r.providers[name].Complete(ctx, r.requestFor(name, req))
		if err == nil {
			return text, nil
		}

		r.logger.Warn("provider completion failed, trying next",
			"provider", name,
			"error", err,
		)
		lastErr = err
	}

	return "", fmt.Errorf("%w: %v", ErrNoProvider, lastErr)
}

// requestFor prepares the request for one provider. Model IDs are
// vendor-specific (Gemini's "gemini-2.0-flash" vs OpenRouter's
// "google/gemini-2.0-flash-001"), so a requested model the target provider
// does not list is cleared and the provider falls back to its own default.
func (r *ProviderRegistry) requestFor(name string, req *CompletionRequest) *CompletionRequest {
	if req.Model == "" || r.capabilities == nil {
		return req
	}

	if _, err := r.capabilities.GetModelCapabilities(name, req.Model); err == nil {
		return req
	}

	r.logger.Debug("requested model not native to provider, using provider default",
		"provider", name,
		"model", req.Model,
	)

	provReq := *req
	provReq.Model = ""
	return &provReq
}
