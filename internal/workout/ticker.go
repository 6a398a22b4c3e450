package workout

import (
	"context"
	"sync"
	"time"
)

// Ticker calls fn once per period on its own goroutine until stopped.
type Ticker struct {
	period time.Duration
	fn     func()

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewTicker(period time.Duration, fn func()) *Ticker {
	return &Ticker{period: period, fn: fn}
}

// Start is a no-op when the ticker is already running.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	go t.loop(ctx, done)
}

// Stop cancels the ticker and waits for its goroutine to exit; fn is
// never called after Stop returns. Stop may be called any number of
// times, but not from inside fn.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *Ticker) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A tick may race with cancellation; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			t.fn()
		}
	}
}
