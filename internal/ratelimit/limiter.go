// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package ratelimit paces outbound GitHub API calls so that successive calls
// are separated by a fixed interval.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultInterval leaves headroom under GitHub's limit of one content
	// creating request per second, accounting for processing between calls.
	DefaultInterval = 350 * time.Millisecond

	// DefaultReportEvery is the number of permits between rate reports.
	DefaultReportEvery = 100
)

// Stats describes the observed request rate over one reporting window.
type Stats struct {
	Requests  int
	Elapsed   time.Duration
	PerSecond float64
	PerMinute float64
	PerHour   float64
}

// Reporter receives rate statistics. It must not block for long.
type Reporter func(Stats)

// Limiter hands out permits at most once per interval.
// It is safe for concurrent use; callers wait for their turn.
type Limiter struct {
	limiter     *rate.Limiter
	interval    time.Duration
	reportEvery int
	report      Reporter
	now         func() time.Time

	mu          sync.Mutex
	count       int
	windowStart time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithReporter sets the function receiving rate statistics.
func WithReporter(r Reporter) Option {
	return func(l *Limiter) {
		l.report = r
	}
}

// WithReportEvery sets how many permits make up one reporting window.
func WithReportEvery(n int) Option {
	return func(l *Limiter) {
		if n > 0 {
			l.reportEvery = n
		}
	}
}

// WithLogger reports rate statistics to the given logger.
func WithLogger(logger *slog.Logger) Option {
	return WithReporter(logReporter(logger))
}

// New creates a limiter granting one permit per interval.
// A non-positive interval falls back to DefaultInterval.
func New(interval time.Duration, opts ...Option) *Limiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	l := &Limiter{
		limiter:     rate.NewLimiter(rate.Every(interval), 1),
		interval:    interval,
		reportEvery: DefaultReportEvery,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.report == nil {
		l.report = logReporter(slog.Default())
	}
	return l
}

// Interval returns the minimum spacing between permits.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// ObtainPermit blocks until the caller may make the next call.
func (l *Limiter) ObtainPermit() {
	// Wait only fails on cancellation, which a background context never does.
	_ = l.Wait(context.Background())
}

// Wait blocks until the caller may make the next call or ctx is done.
// Only granted permits are counted in the rate report.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}
	l.track()
	return nil
}

// track counts a granted permit and reports the rate at the end of each window.
func (l *Limiter) track() {
	l.mu.Lock()
	now := l.now()
	if l.windowStart.IsZero() {
		l.windowStart = now
	}
	l.count++
	if l.count < l.reportEvery {
		l.mu.Unlock()
		return
	}
	stats := newStats(l.count, now.Sub(l.windowStart))
	l.count = 0
	l.windowStart = now
	l.mu.Unlock()

	l.report(stats)
}

func newStats(requests int, elapsed time.Duration) Stats {
	s := Stats{Requests: requests, Elapsed: elapsed}
	if secs := elapsed.Seconds(); secs > 0 {
		s.PerSecond = float64(requests) / secs
		s.PerMinute = s.PerSecond * 60
		s.PerHour = s.PerMinute * 60
	}
	return s
}

func logReporter(logger *slog.Logger) Reporter {
	return func(s Stats) {
		logger.Info("github request rate",
			"component", "ratelimit",
			"requests", s.Requests,
			"per_second", s.PerSecond,
			"per_minute", s.PerMinute,
			"per_hour", s.PerHour,
		)
	}
}
