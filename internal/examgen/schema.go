package examgen

import "github.com/abhisek/examgen/internal/llm"

// Question kinds in structured output.
const (
	KindMultipleChoice = "multiple_choice"
	KindFillInBlank    = "fill_in_blank"
	KindTrueFalse      = "true_false"
)

// ExamSchema defines the JSON schema for structured exam responses.
var ExamSchema = &llm.Schema{
	Name:        "mock-exam",
	Description: "A mock exam: an ordered list of questions with their correct answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type":        "string",
							"enum":        []any{KindMultipleChoice, KindFillInBlank, KindTrueFalse},
							"description": "Question type",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question. Fill in the blank questions mark the gap with ____.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for multiple_choice, without letter prefixes. Empty otherwise.",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "Option letter A-D for multiple_choice, True or False for true_false, the missing word for fill_in_blank.",
						},
					},
					"required":             []any{"kind", "text", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
