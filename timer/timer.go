package timer

// FrameDelta is the step used by AdvanceFrame (60 FPS).
const FrameDelta = 1.0 / 60.0

type Option func(*Timer)

// WithOnComplete sets the function called when the countdown reaches zero.
func WithOnComplete(fn func()) Option {
	return func(t *Timer) {
		t.onComplete = fn
	}
}

// Timer counts down a number of seconds. It is not safe for concurrent use:
// the owner advances it once per tick from a single goroutine.
type Timer struct {
	remaining  float64
	onComplete func()
}

func New(initial float64, opts ...Option) *Timer {
	t := &Timer{}
	for _, opt := range opts {
		opt(t)
	}
	t.SetTime(initial)

	return t
}

// SetTime re-arms the countdown. Values <= 0 (and NaN) stop it without
// firing the callback.
func (t *Timer) SetTime(seconds float64) {
	if !(seconds > 0) {
		t.remaining = 0
		return
	}
	t.remaining = seconds
}

func (t *Timer) Stop() {
	t.SetTime(0)
}

// Advance counts down by delta and reports whether the countdown finished
// during this call. The callback runs after the timer is zeroed, so it may
// call SetTime to start another run.
func (t *Timer) Advance(delta float64) bool {
	if t.remaining <= 0 {
		return false
	}

	t.remaining -= delta
	if t.remaining > 0 {
		return false
	}

	t.remaining = 0
	if t.onComplete != nil {
		t.onComplete()
	}

	return true
}

func (t *Timer) AdvanceFrame() bool {
	return t.Advance(FrameDelta)
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}

func (t *Timer) Running() bool {
	return t.remaining > 0
}
