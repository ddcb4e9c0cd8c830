package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abhisek/examgen/internal/examerr"
	"github.com/abhisek/examgen/internal/llm"
)

// Purpose labels exam requests in the LLM event log.
const Purpose = "exam-gen"

// Generator produces exam text using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate asks the provider for an exam covering text and returns the
// cleaned exam text. The spec is validated before any provider call.
func (g *Generator) Generate(ctx context.Context, text string, spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(text, spec)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}
	if g.config.Structured {
		req.Schema = ExamSchema
	}

	slog.Debug("requesting exam",
		"model", g.provider.ModelID(),
		"questions", spec.Total(),
		"language", spec.Language,
		"structured", g.config.Structured,
		"source_chars", len(text))

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", examerr.New(examerr.ExternalServiceFailure, "generate exam", err)
	}

	if resp.StopReason == "max_tokens" {
		slog.Warn("exam text was cut off at the token limit; the last questions may be incomplete",
			"model", resp.Model,
			"max_tokens", req.MaxTokens,
			"output_tokens", resp.Usage.OutputTokens)
	}

	raw := resp.Text()
	if g.config.Structured {
		var exam Exam
		if err := json.Unmarshal(resp.Content, &exam); err != nil {
			return "", examerr.New(examerr.ExternalServiceFailure, "generate exam",
				&llm.ErrInvalidResponse{Err: fmt.Errorf("decode exam: %w", err)})
		}
		raw = FormatExam(exam)
	}

	return Clean(raw), nil
}
