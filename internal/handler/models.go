package handler

import (
	"log/slog"
	"net/http"

	"braindumper/internal/httputil"
	"braindumper/internal/service/llm"
)

// ModelsHandler serves the model capability catalog
type ModelsHandler struct {
	capabilities *llm.CapabilityRegistry
	providers    *llm.ProviderRegistry
	logger       *slog.Logger
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(capabilities *llm.CapabilityRegistry, providers *llm.ProviderRegistry, logger *slog.Logger) *ModelsHandler {
	return &ModelsHandler{
		capabilities: capabilities,
		providers:    providers,
		logger:       logger,
	}
}

// providerModels is one provider's section of the catalog response
type providerModels struct {
	Provider string                  `json:"provider"`
	Models   []llm.ModelCapabilities `json:"models"`
}

// ListModels lists the models of every configured provider, in fallback order
// GET /api/models
func (h *ModelsHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	catalog := make([]providerModels, 0, len(h.providers.Names()))

	for _, provider := range h.providers.Names() {
		models, err := h.capabilities.ListProviderModels(provider)
		if err != nil {
			h.logger.Warn("provider missing from capability registry", "provider", provider)
			continue
		}
		catalog = append(catalog, providerModels{
			Provider: provider,
			Models:   models,
		})
	}

	httputil.RespondJSON(w, http.StatusOK, catalog)
}
