package provider

import (
	"log/slog"

	"github.com/helixml/sponsorlink/internal/config"
)

// FromConfig returns the text generator selected by cfg. Outbound calls are
// logged through logger.
func FromConfig(cfg config.AppConfig, logger *slog.Logger) TextGenerator {
	client := newHTTPClient(logger)

	switch cfg.Provider() {
	case config.ProviderOpenAI:
		e := cfg.OpenAI()
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:     e.APIKey(),
			BaseURL:    e.BaseURL(),
			Model:      e.Model(),
			HTTPClient: client,
		})
	default:
		e := cfg.Gemini()
		return NewGeminiProvider(GeminiConfig{
			APIKey:     e.APIKey(),
			BaseURL:    e.BaseURL(),
			Model:      e.Model(),
			HTTPClient: client,
		})
	}
}
