package extract

import (
	"fmt"

	"github.com/dgallion1/finsift/internal/config"
)

// NewClient builds the extraction backend named by the configuration.
// Credentials come from the config, threaded in at construction.
func NewClient(cfg config.Config) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		return NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
