// Package actions simulates the edit, flag and delete operations on directory
// records. Nothing is sent anywhere: the simulator waits, runs an optional task
// and reports the outcome as a state.FinishAction for the store to apply.
package actions

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/state"
)

// DefaultDelay is the simulated latency of every action.
const DefaultDelay = time.Second

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// TaskFunc performs the action body. A non-nil error fails the action.
type TaskFunc func(ctx context.Context, kind state.ActionKind, emp directory.Employee) error

// Simulator runs one action at a time on behalf of the caller. It does not
// enforce single-flight; the store rejects a second BeginAction.
type Simulator struct {
	Delay  time.Duration
	Sleep  SleepFunc
	Task   TaskFunc
	Now    func() time.Time
	Logger *zap.Logger
}

// New returns a simulator with the given delay and default hooks.
func New(delay time.Duration, logger *zap.Logger) *Simulator {
	return &Simulator{Delay: delay, Logger: logger}
}

// Run waits out the delay, runs the task and returns the result to dispatch.
func (s *Simulator) Run(ctx context.Context, kind state.ActionKind, emp directory.Employee) state.FinishAction {
	logger := s.logger().With(
		zap.String("action", kind.String()),
		zap.String("employee_id", emp.ID))
	logger.Info("action started")

	result := state.FinishAction{Kind: kind, ID: emp.ID, Name: emp.DisplayName()}
	err := s.sleep()(ctx, s.delay())
	if err == nil {
		err = s.task()(ctx, kind, emp)
	}
	result.At = s.now()

	if err != nil {
		result.Err = fmt.Errorf("%s %s: %w", kind, emp.ID, err)
		logger.Warn("action failed", zap.Error(err))
		return result
	}
	logger.Info("action finished")
	return result
}

// SleepContext is the default SleepFunc.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func succeed(context.Context, state.ActionKind, directory.Employee) error {
	return nil
}

func (s *Simulator) delay() time.Duration {
	if s.Delay < 0 {
		return 0
	}
	return s.Delay
}

func (s *Simulator) sleep() SleepFunc {
	if s.Sleep == nil {
		return SleepContext
	}
	return s.Sleep
}

func (s *Simulator) task() TaskFunc {
	if s.Task == nil {
		return succeed
	}
	return s.Task
}

func (s *Simulator) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Simulator) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
