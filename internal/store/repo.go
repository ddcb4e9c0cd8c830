package store

import (
	"context"
	"time"
)

// QueryOpts configures list queries.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	RunID string // restrict LLM events to one run
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	RunID        string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// Run status values other than a failure kind.
const (
	RunRunning = "running"
	RunOK      = "ok"
)

// Run is one exam generation run.
type Run struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	Title          string
	Inputs         []string
	MultipleChoice int
	FillInBlank    int
	TrueFalse      int
	Language       string
	Split          bool
	Outputs        []string
	// Status is RunRunning, RunOK or the failure kind.
	Status       string
	ErrorMessage string
}

// RunRepo records exam runs.
type RunRepo interface {
	// StartRun inserts a run in the running state.
	StartRun(ctx context.Context, run *Run) error

	// FinishRun stores the outcome of a run started with StartRun.
	FinishRun(ctx context.Context, id string, status string, outputs []string, errMsg string) error
}
