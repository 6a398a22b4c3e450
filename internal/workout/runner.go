package workout

import (
	"context"
	"sync"
	"time"
)

// Runner drives a Session from a real-time Ticker for use outside the
// TUI event loop. All methods are safe for concurrent use.
type Runner struct {
	mu       sync.Mutex
	session  *Session
	ticker   *Ticker
	ctx      context.Context
	onChange func(Snapshot)
	done     chan struct{}
	doneOnce sync.Once
}

// NewRunner wraps session. onChange, when not nil, is called with a fresh
// snapshot after every tick; it must not call back into the Runner.
func NewRunner(ctx context.Context, session *Session, period time.Duration, onChange func(Snapshot)) *Runner {
	r := &Runner{
		session:  session,
		ctx:      ctx,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	r.ticker = NewTicker(period, r.tick)
	return r
}

// Start begins ticking if the session is active and not complete.
func (r *Runner) Start() {
	r.mu.Lock()
	st := r.session.State()
	r.mu.Unlock()

	if st.Active() && !st.IsComplete() {
		r.ticker.Start(r.ctx)
	}
}

// Done is closed the first time the workout completes.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}

func (r *Runner) CompleteSet(pos int) {
	r.apply(func(s *Session) { s.CompleteSet(pos) })
}

func (r *Runner) SkipRest() {
	r.apply(func(s *Session) { s.SkipRest() })
}

// Jump applies a jump without the confirmation step; callers outside an
// interactive screen have already decided.
func (r *Runner) Jump(pos int) {
	r.apply(func(s *Session) {
		if s.RequestJump(pos) {
			s.Confirm()
		}
	})
	r.Start()
}

func (r *Runner) Pause() {
	r.ticker.Stop()
	r.apply(func(s *Session) { s.Pause() })
}

func (r *Runner) Resume() {
	r.apply(func(s *Session) { s.Resume() })
	r.Start()
}

// Reset stops the ticker before reinitialising so no tick from the old
// run lands on the new state.
func (r *Runner) Reset() {
	r.ticker.Stop()
	r.apply(func(s *Session) {
		s.RequestReset()
		s.Confirm()
	})
	r.Start()
}

// Close stops the ticker. It is safe to call more than once.
func (r *Runner) Close() {
	r.ticker.Stop()
}

func (r *Runner) apply(fn func(*Session)) {
	r.mu.Lock()
	fn(r.session)
	complete := r.session.State().IsComplete()
	r.mu.Unlock()

	if complete {
		r.markDone()
	}
}

func (r *Runner) tick() {
	r.mu.Lock()
	r.session.Tick()
	snap := r.session.Snapshot()
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(snap)
	}
	if snap.Complete {
		r.markDone()
	}
}

func (r *Runner) markDone() {
	r.doneOnce.Do(func() { close(r.done) })
}
