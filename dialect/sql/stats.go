package sql

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/syssam/sqlkind/dialect"
)

// CheckStats holds statement check statistics.
type CheckStats struct {
	// TotalChecks is the total number of checked statements.
	TotalChecks atomic.Int64
	// Failures is the count of rejected statements.
	Failures atomic.Int64
	// SlowChecks is the count of checks exceeding the slow threshold.
	SlowChecks atomic.Int64
	// TotalDuration is the total time spent checking.
	TotalDuration atomic.Int64 // nanoseconds
}

// Stats returns a snapshot of the current statistics.
func (s *CheckStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalChecks:   s.TotalChecks.Load(),
		Failures:      s.Failures.Load(),
		SlowChecks:    s.SlowChecks.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
	}
}

// Reset resets all statistics to zero.
func (s *CheckStats) Reset() {
	s.TotalChecks.Store(0)
	s.Failures.Store(0)
	s.SlowChecks.Store(0)
	s.TotalDuration.Store(0)
}

// StatsSnapshot is a point-in-time snapshot of check statistics.
type StatsSnapshot struct {
	TotalChecks   int64
	Failures      int64
	SlowChecks    int64
	TotalDuration time.Duration
}

// AvgCheckDuration returns the average check duration.
func (s StatsSnapshot) AvgCheckDuration() time.Duration {
	if s.TotalChecks == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.TotalChecks)
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"checks=%d failures=%d slow=%d duration=%s avg=%s",
		s.TotalChecks, s.Failures, s.SlowChecks, s.TotalDuration, s.AvgCheckDuration(),
	)
}

// SlowCheckHook is a function called when a slow check is detected.
type SlowCheckHook func(ctx context.Context, stmt string, duration time.Duration)

// FailureHook is a function called when a statement is rejected.
type FailureHook func(ctx context.Context, stmt string, err error)

// StatsChecker wraps a Checker with statistics collection.
type StatsChecker struct {
	dialect.Checker
	stats         *CheckStats
	slowThreshold time.Duration
	slowHook      SlowCheckHook
	failureHook   FailureHook
	mu            sync.RWMutex
}

// StatsOption configures the StatsChecker.
type StatsOption func(*StatsChecker)

// WithSlowThreshold sets the threshold for slow check detection.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsChecker) {
		s.slowThreshold = d
	}
}

// WithSlowCheckHook sets a callback function for slow checks.
func WithSlowCheckHook(hook SlowCheckHook) StatsOption {
	return func(s *StatsChecker) {
		s.slowHook = hook
	}
}

// WithSlowCheckLog logs slow checks to the default logger.
func WithSlowCheckLog() StatsOption {
	return WithSlowCheckHook(func(_ context.Context, stmt string, duration time.Duration) {
		slog.Warn("slow statement check", "duration", duration, "stmt", stmt)
	})
}

// WithFailureHook sets a callback function for rejected statements.
func WithFailureHook(hook FailureHook) StatsOption {
	return func(s *StatsChecker) {
		s.failureHook = hook
	}
}

// WithFailureLog logs rejected statements to the default logger.
func WithFailureLog() StatsOption {
	return WithFailureHook(func(_ context.Context, stmt string, err error) {
		slog.Warn("statement rejected", "stmt", stmt, "error", err)
	})
}

// NewStatsChecker wraps a Checker with statistics collection.
//
// Example:
//
//	v, _ := sql.OpenScratch(ctx, schema...)
//	c := sql.NewStatsChecker(v,
//	    sql.WithSlowThreshold(50*time.Millisecond),
//	    sql.WithFailureLog(),
//	)
//	_ = c.Check(ctx, q.Get())
//	fmt.Println(c.CheckStats().Stats())
func NewStatsChecker(c dialect.Checker, opts ...StatsOption) *StatsChecker {
	s := &StatsChecker{
		Checker:       c,
		stats:         &CheckStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckStats returns the underlying CheckStats for reading statistics.
func (s *StatsChecker) CheckStats() *CheckStats {
	return s.stats
}

// SlowThreshold returns the current slow check threshold.
func (s *StatsChecker) SlowThreshold() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slowThreshold
}

// SetSlowThreshold updates the slow check threshold.
func (s *StatsChecker) SetSlowThreshold(threshold time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slowThreshold = threshold
}

// Check checks a statement and records statistics.
func (s *StatsChecker) Check(ctx context.Context, stmt string) error {
	start := time.Now()
	err := s.Checker.Check(ctx, stmt)
	s.record(ctx, stmt, start, err)
	return err
}

func (s *StatsChecker) record(ctx context.Context, stmt string, start time.Time, err error) {
	duration := time.Since(start)
	s.stats.TotalChecks.Add(1)
	s.stats.TotalDuration.Add(int64(duration))

	s.mu.RLock()
	threshold := s.slowThreshold
	slowHook := s.slowHook
	failureHook := s.failureHook
	s.mu.RUnlock()

	if err != nil {
		s.stats.Failures.Add(1)
		if failureHook != nil {
			failureHook(ctx, stmt, err)
		}
	}
	if duration > threshold {
		s.stats.SlowChecks.Add(1)
		if slowHook != nil {
			slowHook(ctx, stmt, duration)
		}
	}
}

// DebugChecker wraps a Checker with debug logging.
type DebugChecker struct {
	dialect.Checker
	log func(context.Context, ...any)
}

// DebugOption configures the DebugChecker.
type DebugOption func(*DebugChecker)

// DebugWithLog sets a custom log function.
func DebugWithLog(logFunc func(context.Context, ...any)) DebugOption {
	return func(d *DebugChecker) {
		d.log = logFunc
	}
}

// NewDebugChecker wraps a Checker with debug logging.
func NewDebugChecker(c dialect.Checker, opts ...DebugOption) *DebugChecker {
	d := &DebugChecker{
		Checker: c,
		log: func(_ context.Context, v ...any) {
			slog.Info(fmt.Sprint(v...))
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Check logs the statement and its outcome.
func (d *DebugChecker) Check(ctx context.Context, stmt string) error {
	d.log(ctx, fmt.Sprintf("check: %s", stmt))
	err := d.Checker.Check(ctx, stmt)
	if err != nil {
		d.log(ctx, fmt.Sprintf("rejected: %v", err))
	}
	return err
}

// Ensure interfaces are implemented.
var (
	_ dialect.Checker = (*StatsChecker)(nil)
	_ dialect.Checker = (*DebugChecker)(nil)
)
