package llm

import (
	"cmp"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	openRouterBaseURL      = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel = "google/gemini-2.5-flash"

	// Sent with every request so usage shows up under examgen on openrouter.ai.
	openRouterReferer = "https://github.com/abhisek/examgen"
	openRouterTitle   = "examgen"
)

// OpenRouterProvider talks to OpenRouter through its OpenAI-compatible
// chat endpoint. Models are addressed as "vendor/model".
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}

	model := cmp.Or(strings.TrimSpace(cfg.Model), defaultOpenRouterModel)
	if !strings.Contains(model, "/") {
		return nil, fmt.Errorf("openrouter model %q needs a vendor prefix, e.g. %s", model, defaultOpenRouterModel)
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: cmp.Or(cfg.BaseURL, openRouterBaseURL),
		HTTPClient: &http.Client{
			Transport: attributionTransport{base: http.DefaultTransport},
		},
	})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport adds OpenRouter's app attribution headers.
type attributionTransport struct {
	base http.RoundTripper
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(req)
}
