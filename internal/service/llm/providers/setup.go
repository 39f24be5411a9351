package providers

import (
	"log/slog"

	"braindumper/internal/config"
	"braindumper/internal/service/llm"
	"braindumper/internal/service/llm/providers/gemini"
	"braindumper/internal/service/llm/providers/openrouter"
)

// Setup builds the provider registry from configured API keys.
// The configured default provider leads the fallback order.
// Returns llm.ErrNoProvider when no API key is set at all.
func Setup(cfg *config.Config, capabilities *llm.CapabilityRegistry, logger *slog.Logger) (*llm.ProviderRegistry, error) {
	registry := llm.NewProviderRegistry(capabilities, logger)

	order := []string{"gemini", "openrouter"}
	if cfg.DefaultProvider == "openrouter" {
		order = []string{"openrouter", "gemini"}
	}

	for _, name := range order {
		switch name {
		case "gemini":
			if cfg.GeminiAPIKey == "" {
				logger.Warn("GEMINI_API_KEY not set - Gemini provider not available")
				continue
			}
			registry.Register(gemini.NewClient(gemini.DefaultConfig(cfg.GeminiAPIKey)))
			logger.Info("provider available", "name", "gemini")

		case "openrouter":
			if cfg.OpenRouterAPIKey == "" {
				logger.Warn("OPENROUTER_API_KEY not set - OpenRouter provider not available")
				continue
			}
			registry.Register(openrouter.NewClient(openrouter.DefaultConfig(cfg.OpenRouterAPIKey)))
			logger.Info("provider available", "name", "openrouter")
		}
	}

	if len(registry.Names()) == 0 {
		return nil, llm.ErrNoProvider
	}

	return registry, nil
}
