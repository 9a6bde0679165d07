// Package ratelimit implements an in-memory fixed-window request counter.
//
// Fixed window means non-overlapping buckets of Strategy.Window length: a
// client can burn a full budget at the end of one window and another at the
// start of the next. That boundary burst is an accepted trade-off for a
// single mutex-guarded map, not a defect. The limiter is single-process by
// design; replacing it with a shared store is a deployment concern, not a
// contract change.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/derangga/laundry-app-sub001/logger"
)

// Strategy is an immutable request budget for one endpoint class.
type Strategy struct {
	Name        string
	MaxRequests int
	Window      time.Duration
}

// Info reports the state of one (key, strategy) window for response headers.
// Values may be slightly stale under concurrent traffic.
type Info struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// LimitError is returned when a budget is exhausted. RetryAfterSeconds is the
// remaining window time rounded up to whole seconds.
type LimitError struct {
	Limit             int
	RetryAfterSeconds int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("rate limit of %d requests exceeded, retry in %ds", e.Limit, e.RetryAfterSeconds)
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter tracks request counts per (key, strategy) pair. All map mutations
// happen under one mutex so two requests racing at the budget boundary can
// never both be admitted.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// NewWithClock builds a limiter on an injectable clock for tests.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     now,
	}
}

func bucketKey(key string, s Strategy) string {
	return s.Name + ":" + key
}

// CheckLimit admits the request and counts it, or returns *LimitError if the
// budget for the current window is already spent.
func (l *Limiter) CheckLimit(key string, s Strategy) error {
	now := l.now()
	k := bucketKey(key, s)

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[k]
	if !ok || !e.resetAt.After(now) {
		l.entries[k] = &entry{count: 1, resetAt: now.Add(s.Window)}
		return nil
	}

	if e.count >= s.MaxRequests {
		remaining := e.resetAt.Sub(now)
		retry := int((remaining + time.Second - 1) / time.Second)
		if retry < 1 {
			retry = 1
		}
		return &LimitError{Limit: s.MaxRequests, RetryAfterSeconds: retry}
	}

	e.count++
	return nil
}

// GetLimitInfo reports the current window without consuming budget.
func (l *Limiter) GetLimitInfo(key string, s Strategy) Info {
	now := l.now()
	k := bucketKey(key, s)

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[k]
	if !ok || !e.resetAt.After(now) {
		return Info{Limit: s.MaxRequests, Remaining: s.MaxRequests, ResetAt: now.Add(s.Window)}
	}

	remaining := s.MaxRequests - e.count
	if remaining < 0 {
		remaining = 0
	}
	return Info{Limit: s.MaxRequests, Remaining: remaining, ResetAt: e.resetAt}
}

// Reset clears every window tracked for a key. Test utility.
func (l *Limiter) Reset(key string) {
	suffix := ":" + key

	l.mu.Lock()
	defer l.mu.Unlock()

	for k := range l.entries {
		if strings.HasSuffix(k, suffix) {
			delete(l.entries, k)
		}
	}
}

// Sweep drops entries whose window has already closed, bounding the map to
// the number of distinct keys seen within the last window.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for k, e := range l.entries {
		if !e.resetAt.After(now) {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked windows.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// StartSweeper runs Sweep every interval until ctx is canceled. The caller
// owns the lifecycle: start it at boot, cancel the context at shutdown.
func (l *Limiter) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Log.Info("Rate limit sweeper stopped")
				return
			case <-t.C:
				if removed := l.Sweep(); removed > 0 {
					logger.Log.WithField("removed", removed).Debug("Swept expired rate limit entries")
				}
			}
		}
	}()
}
