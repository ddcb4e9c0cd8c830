package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/examgen/internal/store"
)

// NewProvider creates a Provider from configuration.
//
// The vendor provider is wrapped as caller -> retry -> timeout -> logging ->
// base, so every attempt is bounded and recorded. A nil eventRepo disables
// the audit log.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base, err = newMockFromConfig(cfg.Mock)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := base
	if eventRepo != nil {
		p = WithLogging(p, cfg.Provider, eventRepo)
	}
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}

// NewProviderFromEnv reads EXAMGEN_* configuration and builds a Provider.
// When the configured provider has no key, the vendors' standard key
// variables are checked before giving up.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if verr := cfg.Validate(); verr != nil {
		discovered, ok := DiscoverConfig(cfg)
		if !ok || os.Getenv("EXAMGEN_LLM_PROVIDER") != "" {
			return nil, verr
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

func newMockFromConfig(cfg MockConfig) (Provider, error) {
	if cfg.ResponseFile == "" {
		return nil, fmt.Errorf("EXAMGEN_MOCK_RESPONSE must name a response file for the mock provider")
	}
	data, err := os.ReadFile(cfg.ResponseFile)
	if err != nil {
		return nil, fmt.Errorf("read mock response: %w", err)
	}
	m := NewMockProvider(MockResponse{Content: data})
	m.Repeat = true
	return m, nil
}
