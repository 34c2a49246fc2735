package backend

import (
	"context"
	"time"

	"go.uber.org/atomic"
)

// throttle spaces successive operations at least interval apart.
type throttle struct {
	interval time.Duration
	next     *atomic.Int64
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval, next: atomic.NewInt64(0)}
}

// wait blocks until the next slot is free. It returns false if ctx ends
// first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	for {
		now := time.Now().UnixNano()
		next := t.next.Load()
		if now >= next {
			if t.next.CompareAndSwap(next, now+int64(t.interval)) {
				return true
			}
			continue
		}
		delay := time.Duration(next - now)
		if delay > t.interval {
			delay = t.interval
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}
