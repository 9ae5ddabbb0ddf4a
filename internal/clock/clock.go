package clock

import (
	"sync"
	"time"
)

// Clock reports the audio timeline in seconds. Zero means the timeline has
// not started, which is also what an unavailable audio device reports.
type Clock interface {
	Now() float64
}

type Func func() float64

func (f Func) Now() float64 {
	return f()
}

// Wall counts seconds since Start was called, or 0 before that
type Wall struct {
	mu      sync.Mutex
	started time.Time
	now     func() time.Time
}

func NewWall() *Wall {
	return &Wall{now: time.Now}
}

func (w *Wall) Start() {
	w.mu.Lock()
	if w.started.IsZero() {
		w.started = w.now()
	}
	w.mu.Unlock()
}

func (w *Wall) Now() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started.IsZero() {
		return 0
	}
	return w.now().Sub(w.started).Seconds()
}

// Manual only moves when told to. It never goes backwards.
type Manual struct {
	mu  sync.Mutex
	now float64
}

func (m *Manual) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Set(t float64) {
	m.mu.Lock()
	if t > m.now {
		m.now = t
	}
	m.mu.Unlock()
}

func (m *Manual) Advance(d float64) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.now += d
	m.mu.Unlock()
}
