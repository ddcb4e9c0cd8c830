package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/examgen/internal/examerr"
	"github.com/abhisek/examgen/internal/examgen"
	"github.com/abhisek/examgen/internal/llm"
	"github.com/abhisek/examgen/internal/render"
	"github.com/abhisek/examgen/internal/store"
)

// Sources extracts and joins the text of the input documents.
type Sources interface {
	Sources(primary string, supplements ...string) (string, error)
}

// ExamGenerator turns source text into exam text.
type ExamGenerator interface {
	Generate(ctx context.Context, text string, spec examgen.Spec) (string, error)
}

// Outcome describes a finished run.
type Outcome struct {
	RunID     string
	ExamText  string
	TextPath  string
	Documents []render.Result
}

// Paths returns the written document paths in order.
func (o *Outcome) Paths() []string {
	out := make([]string, len(o.Documents))
	for i, d := range o.Documents {
		out[i] = d.Path
	}
	return out
}

// Runner executes the extract, generate, render pipeline.
type Runner struct {
	sources   Sources
	generator ExamGenerator
	writer    *render.PDFWriter
	runs      store.RunRepo
	now       func() time.Time
	logger    *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunRepo records every run in repo.
func WithRunRepo(repo store.RunRepo) RunnerOption {
	return func(r *Runner) { r.runs = repo }
}

// WithClock replaces time.Now for output names.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// WithWriter replaces the PDF writer.
func WithWriter(w *render.PDFWriter) RunnerOption {
	return func(r *Runner) { r.writer = w }
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a Runner.
func NewRunner(src Sources, gen ExamGenerator, opts ...RunnerOption) *Runner {
	r := &Runner{
		sources:   src,
		generator: gen,
		writer:    render.NewPDFWriter(),
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one pipeline run. Steps run strictly in order and the first
// failure stops the run; the returned error carries an examerr.Kind.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Outcome, error) {
	out := &Outcome{RunID: uuid.NewString()}
	ctx = llm.WithRunID(ctx, out.RunID)
	started := r.now()

	r.startRun(ctx, out.RunID, cfg, started)
	err := r.run(ctx, cfg, started, out)
	r.finishRun(ctx, out, err)

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Runner) run(ctx context.Context, cfg Config, started time.Time, out *Outcome) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := r.sources.Sources(cfg.Input, cfg.Supplements...)
	if err != nil {
		return err
	}
	r.logger.Debug("sources extracted", "run_id", out.RunID, "chars", len(text))

	exam, err := r.generator.Generate(ctx, text, cfg.Spec)
	if err != nil {
		return err
	}
	out.ExamText = exam

	if cfg.SaveText {
		out.TextPath = TextPath(cfg, started)
		if err := writeText(out.TextPath, exam); err != nil {
			return err
		}
	}

	docs, err := RenderExam(r.writer, exam, cfg, started)
	out.Documents = docs
	return err
}

// RenderExam writes exam as one combined document, or as a question sheet
// and an answer key when cfg.Split is set. File names and page footers use
// at. Documents written before a failure are returned with the error.
func RenderExam(w *render.PDFWriter, exam string, cfg Config, at time.Time) ([]render.Result, error) {
	paths := OutputPaths(cfg, at)
	opts := render.DefaultOptions()
	if cfg.Title != "" {
		opts.Title = cfg.Title
	}
	opts.BlankSpacing = cfg.BlankSpacing
	opts.FontPath = cfg.FontPath
	opts.Date = at

	if !cfg.Split {
		res, err := w.Render(exam, paths[0], opts)
		if err != nil {
			return nil, err
		}
		return []render.Result{res}, nil
	}

	questions, answers := render.Split(exam)

	opts.Mode = render.QuestionsOnly
	qRes, err := w.Render(questions, paths[0], opts)
	if err != nil {
		return nil, err
	}

	opts.Mode = render.AnswersOnly
	opts.Title += " - ANSWER KEY"
	aRes, err := w.Render(answers, paths[1], opts)
	if err != nil {
		return []render.Result{qRes}, err
	}
	return []render.Result{qRes, aRes}, nil
}

func writeText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return examerr.WithPath(examerr.PersistenceFailure, "save exam text", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return examerr.WithPath(examerr.PersistenceFailure, "save exam text", path, err)
	}
	return nil
}

// Run history is best effort.
func (r *Runner) startRun(ctx context.Context, id string, cfg Config, started time.Time) {
	if r.runs == nil {
		return
	}
	inputs := append([]string{cfg.Input}, cfg.Supplements...)
	err := r.runs.StartRun(ctx, &store.Run{
		ID:             id,
		StartedAt:      started,
		Title:          cfg.Title,
		Inputs:         inputs,
		MultipleChoice: cfg.Spec.MultipleChoice,
		FillInBlank:    cfg.Spec.FillInBlank,
		TrueFalse:      cfg.Spec.TrueFalse,
		Language:       cfg.Spec.Language,
		Split:          cfg.Split,
	})
	if err != nil {
		r.logger.Warn("failed to record run start", "run_id", id, "error", err)
	}
}

func (r *Runner) finishRun(ctx context.Context, out *Outcome, runErr error) {
	if r.runs == nil {
		return
	}
	status, msg := store.RunOK, ""
	if runErr != nil {
		status, msg = examerr.KindOf(runErr).String(), runErr.Error()
	}
	if err := r.runs.FinishRun(context.WithoutCancel(ctx), out.RunID, status, out.Paths(), msg); err != nil {
		r.logger.Warn("failed to record run result", "run_id", out.RunID, "error", err)
	}
}
