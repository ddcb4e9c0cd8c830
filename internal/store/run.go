package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// RunStore implements RunRepo over exam_runs.
type RunStore struct {
	drv *entsql.Driver
}

var runColumns = []string{
	"run_id", "started_at", "finished_at", "title", "inputs", "mcq_count",
	"fib_count", "tf_count", "language", "split", "outputs", "status", "error_message",
}

func (r *RunStore) StartRun(ctx context.Context, run *Run) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	if run.Status == "" {
		run.Status = RunRunning
	}
	inputs, err := json.Marshal(nonNil(run.Inputs))
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}

	query, args := builder().Insert(examRunsTable).
		Columns("run_id", "started_at", "title", "inputs", "mcq_count", "fib_count",
			"tf_count", "language", "split", "outputs", "status").
		Values(run.ID, run.StartedAt, run.Title, string(inputs), run.MultipleChoice,
			run.FillInBlank, run.TrueFalse, run.Language, run.Split, "[]", run.Status).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

func (r *RunStore) FinishRun(ctx context.Context, id string, status string, outputs []string, errMsg string) error {
	out, err := json.Marshal(nonNil(outputs))
	if err != nil {
		return fmt.Errorf("marshal outputs: %w", err)
	}

	query, args := builder().Update(examRunsTable).
		Set("finished_at", time.Now()).
		Set("status", status).
		Set("outputs", string(out)).
		Set("error_message", errMsg).
		Where(entsql.EQ("run_id", id)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

// ListRuns returns runs newest first.
func (r *RunStore) ListRuns(ctx context.Context, opts QueryOpts) ([]Run, error) {
	b := builder()
	sel := b.Select(runColumns...).
		From(b.Table(examRunsTable)).
		OrderBy(entsql.Desc("id"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			run             Run
			finished        sql.NullTime
			inputs, outputs sql.NullString
		)
		err := rows.Scan(&run.ID, &run.StartedAt, &finished, &run.Title, &inputs,
			&run.MultipleChoice, &run.FillInBlank, &run.TrueFalse, &run.Language,
			&run.Split, &outputs, &run.Status, &run.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if finished.Valid {
			run.FinishedAt = finished.Time
		}
		if run.Inputs, err = decodeList(inputs); err != nil {
			return nil, fmt.Errorf("decode inputs of run %s: %w", run.ID, err)
		}
		if run.Outputs, err = decodeList(outputs); err != nil {
			return nil, fmt.Errorf("decode outputs of run %s: %w", run.ID, err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func decodeList(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
