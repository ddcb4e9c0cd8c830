package llm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// failure is how the retry loop treats a provider error.
type failure int

const (
	failTransient failure = iota // try again after a backoff
	failMalformed                // one more try, then give up
	failFinal                    // return immediately
)

func classifyFailure(err error) failure {
	var (
		maxTok   *ErrMaxTokensExceeded
		rejected *ErrRequestRejected
		invalid  *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return failFinal
	case errors.As(err, &maxTok), errors.As(err, &rejected):
		return failFinal
	case errors.As(err, &invalid):
		return failMalformed
	}
	return failTransient
}

// RetryProvider re-sends a request after transient failures, waiting a
// capped exponential backoff with jitter between attempts.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	sleep  func(context.Context, time.Duration) error
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg, sleep: sleepContext}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	malformed := 0
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch classifyFailure(err) {
		case failFinal:
			return nil, err
		case failMalformed:
			malformed++
			if malformed > 1 {
				return nil, err
			}
		}
		if attempt >= r.config.MaxAttempts {
			return nil, err
		}

		wait := r.backoff(attempt-1, err)
		slog.Debug("retrying LLM request",
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
		if err := r.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff returns the wait before retry n (zero-based). A rate limit with
// a Retry-After hint overrides the schedule.
func (r *RetryProvider) backoff(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := math.Min(
		float64(r.config.InitialWait)*math.Pow(r.config.Multiplier, float64(n)),
		float64(r.config.MaxWait),
	)
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(wait)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
