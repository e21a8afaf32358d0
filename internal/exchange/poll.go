package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/sevigo/review-assistant/internal/config"
	"github.com/sevigo/review-assistant/internal/core"
)

// RunAndWait starts assistantID against the thread and blocks until the run
// reaches a terminal state, the poll timeout elapses, or ctx is done.
// It returns the run only when it completed; any other terminal state is a
// *core.RunFailedError.
func (s *Service) RunAndWait(ctx context.Context, threadID, assistantID string) (*core.Run, error) {
	run, err := s.client.StartRun(ctx, threadID, assistantID)
	if err != nil {
		return nil, err
	}
	return s.waitForRun(ctx, threadID, run)
}

func (s *Service) waitForRun(ctx context.Context, threadID string, run *core.Run) (*core.Run, error) {
	// waitCtx bounds the whole wait, including a status call still in flight.
	waitCtx, cancel := context.WithTimeout(ctx, s.poll.Timeout)
	defer cancel()

	interval := s.poll.InitialInterval
	polls := 0
	for !run.Status.IsTerminal() {
		wait := time.NewTimer(interval)
		select {
		case <-waitCtx.Done():
			wait.Stop()
			return nil, s.waitAborted(ctx, run, polls)
		case <-wait.C:
		}

		next, err := s.client.GetRun(waitCtx, threadID, run.ID)
		if err != nil {
			if waitCtx.Err() != nil {
				return nil, s.waitAborted(ctx, run, polls)
			}
			return nil, err
		}
		run = next
		polls++
		interval = nextInterval(interval, s.poll)
		s.logger.Debug("polled assistant run", "run_id", run.ID, "status", run.Status, "polls", polls)
	}

	s.metrics.ObserveRun(run.Status, polls)
	if !run.Status.IsSuccess() {
		return nil, &core.RunFailedError{
			Status:  run.Status,
			Code:    run.LastErrorCode,
			Message: run.LastErrorMessage,
		}
	}
	return run, nil
}

// waitAborted reports why the wait ended early: the caller's own
// cancellation, or the run timeout.
func (s *Service) waitAborted(ctx context.Context, run *core.Run, polls int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.metrics.ObserveRun(core.RunStatusTimeout, polls)
	return &core.RunFailedError{
		Status:  core.RunStatusTimeout,
		Message: fmt.Sprintf("run %s still %s after %s", run.ID, run.Status, s.poll.Timeout),
	}
}

// nextInterval grows the poll interval by the configured multiplier, capped
// at MaxInterval.
func nextInterval(current time.Duration, cfg config.PollConfig) time.Duration {
	next := time.Duration(float64(current) * cfg.Multiplier)
	if next > cfg.MaxInterval || next <= 0 {
		return cfg.MaxInterval
	}
	return next
}
