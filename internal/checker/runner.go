package checker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/webwatch/internal/domain"
	"github.com/hamed0406/webwatch/internal/report"
)

// Check performs one bounded operation against one target. A failed
// check may either return a result carrying Status == error, or return
// an error; the Runner folds returned errors into the result record so
// failures are data, not control flow.
type Check interface {
	Check(ctx context.Context, t domain.Target) (domain.CheckResult, error)
}

// Runner visits each target exactly once, in order, never in parallel.
// One target's failure never aborts the rest: every target yields
// exactly one CheckResult.
type Runner struct {
	Logger  *zap.Logger
	Check   Check
	Timeout time.Duration
	Sink    report.Sink // optional; appended per target so partial progress survives
}

func NewRunner(logger *zap.Logger, check Check, timeout time.Duration, sink report.Sink) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Runner{Logger: logger, Check: check, Timeout: timeout, Sink: sink}
}

func (r *Runner) Run(ctx context.Context, targets []domain.Target) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, len(targets))

	for _, tgt := range targets {
		cctx, cancel := context.WithTimeout(ctx, r.Timeout)
		res, err := r.Check.Check(cctx, tgt)
		cancel()

		if res.URL == "" {
			res.URL = tgt.URL
		}
		if res.CheckedAt.IsZero() {
			res.CheckedAt = time.Now().UTC()
		}
		if err != nil {
			res.Status = domain.StatusError
			if res.Error == "" {
				res.Error = err.Error()
			}
		}

		if r.Sink != nil {
			if serr := r.Sink.Append(ctx, res); serr != nil {
				r.Logger.Warn("sink_append_error",
					zap.String("url", tgt.URL),
					zap.Error(serr),
				)
			}
		}

		r.Logger.Info("check_done",
			zap.String("url", tgt.URL),
			zap.String("status", string(res.Status)),
			zap.Float64("elapsed_ms", res.ElapsedMS),
			zap.String("error", res.Error),
		)

		results = append(results, res)
	}

	return results
}
