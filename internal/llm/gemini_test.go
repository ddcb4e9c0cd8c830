package llm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind":    map[string]any{"type": "string", "enum": []any{"a", "b"}},
						"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"points":  map[string]any{"type": "integer"},
					},
					"required": []any{"kind"},
				},
			},
		},
		"required": []any{"questions"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	questions := schema.Properties["questions"]
	if questions == nil || questions.Type != genai.TypeArray {
		t.Fatalf("expected questions ARRAY, got %+v", questions)
	}
	item := questions.Items
	if item.Type != genai.TypeObject || len(item.Required) != 1 {
		t.Fatalf("unexpected item schema: %+v", item)
	}
	if len(item.Properties["kind"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(item.Properties["kind"].Enum))
	}
	if item.Properties["options"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING option items, got %s", item.Properties["options"].Items.Type)
	}
	if item.Properties["points"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER points, got %s", item.Properties["points"].Type)
	}
	if len(schema.Required) != 1 {
		t.Fatalf("expected 1 required field, got %d", len(schema.Required))
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestMapGeminiError(t *testing.T) {
	wrap := func(code int) error {
		return fmt.Errorf("generate content: %w", genai.APIError{Code: code, Message: "x"})
	}

	var rl *ErrRateLimit
	if err := mapGeminiError(wrap(429)); !errors.As(err, &rl) {
		t.Errorf("429: expected ErrRateLimit, got %T", err)
	}
	var rej *ErrRequestRejected
	if err := mapGeminiError(wrap(403)); !errors.As(err, &rej) || rej.Status != 403 {
		t.Errorf("403: expected ErrRequestRejected, got %T", err)
	}
	var un *ErrProviderUnavailable
	if err := mapGeminiError(wrap(503)); !errors.As(err, &un) {
		t.Errorf("503: expected ErrProviderUnavailable, got %T", err)
	}
	if err := mapGeminiError(errors.New("dial tcp: refused")); !errors.As(err, &un) {
		t.Errorf("network: expected ErrProviderUnavailable, got %T", err)
	}
}
