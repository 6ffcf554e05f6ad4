package llm

import (
	"context"
	"fmt"

	"github.com/huvdesign/brandcheck/internal/config"
	"github.com/huvdesign/brandcheck/internal/logger"
)

// NewProvider builds the configured provider wrapped as
// timeout → retry → logging → base.
func NewProvider(ctx context.Context, cfg config.AI, log *logger.Logger) (Provider, error) {
	key, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}
	model := cfg.ModelName()

	var base Provider
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(key, model)
	case "openai":
		base, err = NewOpenAIProvider(key, model, cfg.BaseURL)
	case "gemini":
		base, err = NewGeminiProvider(ctx, key, model)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, log)
	p = WithRetry(p, RetryConfig{
		MaxAttempts: cfg.Retry.MaxAttempts,
		InitialWait: cfg.Retry.InitialWait,
		MaxWait:     cfg.Retry.MaxWait,
		Multiplier:  cfg.Retry.Multiplier,
	})
	return WithTimeout(p, cfg.Timeout), nil
}
