package engine

import (
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/clock"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/judge"
	"github.com/mohammedhamoda/neurorhythm/internal/score"
	"github.com/mohammedhamoda/neurorhythm/internal/sequence"
	"github.com/mohammedhamoda/neurorhythm/internal/tempo"
)

// Audio plays a named sound at a time on the audio clock
type Audio interface {
	Schedule(symbol game.Symbol, at float64)
}

// Policy decides what happens when ticks stall for longer than a beat
type Policy uint8

const (
	// Skip drops the overdue beats and resumes on the beat grid
	Skip Policy = iota
	// Burst fires every overdue beat, one per tick, until caught up
	Burst
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "skip", "":
		return Skip, nil
	case "burst":
		return Burst, nil
	}
	return Skip, errors.New("late policy must be skip or burst")
}

type Config struct {
	Sequence     sequence.Provider
	Tempo        *tempo.Controller
	HitWindow    time.Duration
	Strict       bool    // at most one live note per symbol
	BaseInterval float64 // seconds between beats at speed 1
	LeadIn       float64 // seconds before the first beat
	Policy       Policy
}

// Summary is handed to OnEnd exactly once per session
type Summary struct {
	Stats    score.Stats
	Spawned  int
	Dropped  int // notes still live when the session ended
	Elapsed  time.Duration
	Duration time.Duration
	Manual   bool
}

// State is a snapshot for rendering
type State struct {
	Running   bool
	Stats     score.Stats
	Speed     float64
	Loops     int
	Live      []game.Note
	Elapsed   time.Duration
	Remaining time.Duration
}

type Engine struct {
	OnSpawn func(note game.Note)
	OnJudge func(j game.Judgement, stats score.Stats)
	OnEnd   func(s Summary)

	mu    sync.Mutex
	cfg   Config
	clock clock.Clock
	audio Audio
	judge *judge.Judge
	now   func() time.Time

	running  bool
	started  time.Time
	duration time.Duration
	next     float64 // audio clock time of the next beat
	speed    float64
	stats    score.Stats
	spawned  int
}

func New(cfg Config, c clock.Clock, a Audio) *Engine {
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = 1
	}
	if cfg.Tempo == nil {
		cfg.Tempo = tempo.New(tempo.PianoConfig, tempo.Steady)
	}
	return &Engine{
		cfg:   cfg,
		clock: c,
		audio: a,
		judge: judge.New(cfg.HitWindow, cfg.Strict),
		now:   time.Now,
		speed: 1,
	}
}

// events collected under the lock and delivered after it is released, so
// callbacks may call back into the engine
type events struct {
	spawned []game.Note
	judged  []game.Judgement
	stats   []score.Stats
	end     *Summary
}

func (e *Engine) deliver(ev *events) {
	if e.OnJudge != nil {
		for i, j := range ev.judged {
			e.OnJudge(j, ev.stats[i])
		}
	}
	if e.OnSpawn != nil {
		for _, n := range ev.spawned {
			e.OnSpawn(n)
		}
	}
	if ev.end != nil && e.OnEnd != nil {
		e.OnEnd(*ev.end)
	}
}

func (e *Engine) Start(duration time.Duration) error {
	if duration <= 0 {
		return errors.New("session duration must be positive")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return errors.New("session already running")
	}

	e.cfg.Sequence.Reset()
	e.cfg.Tempo.Reset()
	e.judge.CancelAll()
	e.stats = score.Stats{}
	e.spawned = 0

	e.started = e.now()
	e.duration = duration
	e.next = e.clock.Now() + e.cfg.LeadIn
	e.speed = e.cfg.Tempo.Speed(tempo.Progress{})
	e.running = true
	return nil
}

// Tick runs one step of the scheduling loop. Call it once per frame.
func (e *Engine) Tick() {
	var ev events
	e.mu.Lock()
	e.tick(&ev)
	e.mu.Unlock()
	e.deliver(&ev)
}

func (e *Engine) tick(ev *events) {
	if !e.running {
		return
	}
	now := e.now()
	elapsed := now.Sub(e.started)
	if elapsed >= e.duration {
		ev.end = e.finish(now, false, ev)
		return
	}

	for _, j := range e.judge.Expire(now) {
		e.apply(j, ev)
	}

	e.speed = e.cfg.Tempo.Speed(e.progress(elapsed))

	at := e.clock.Now()
	if at <= 0 || at < e.next {
		// Either the audio clock has not started or the beat is not due
		return
	}

	interval := e.cfg.BaseInterval / e.speed
	if e.cfg.Policy == Skip && at-e.next >= interval {
		skipped := math.Floor((at - e.next) / interval)
		e.next += skipped * interval
		log.Printf("tick stalled, skipped %v beats\n", skipped)
	}

	symbol := e.cfg.Sequence.Next()
	if !symbol.IsRest() {
		// Scheduled on the grid, not at "now"
		if e.audio != nil {
			e.audio.Schedule(symbol, e.next)
		}
		note, superseded := e.judge.Spawn(symbol, e.next, now)
		if superseded != nil {
			e.apply(*superseded, ev)
		}
		e.spawned++
		ev.spawned = append(ev.spawned, *note)
	}
	e.next += interval
}

func (e *Engine) progress(elapsed time.Duration) tempo.Progress {
	f := float64(elapsed) / float64(e.duration)
	if f > 1 {
		f = 1
	}
	return tempo.Progress{Fraction: f, Loops: e.cfg.Sequence.Loops()}
}

// apply feeds a judgement into the stats and the tempo, in resolution order
func (e *Engine) apply(j game.Judgement, ev *events) {
	e.stats.Add(j.Outcome)
	if j.Outcome == game.Hit {
		e.cfg.Tempo.Hit()
	} else {
		e.cfg.Tempo.Miss()
	}
	ev.judged = append(ev.judged, j)
	ev.stats = append(ev.stats, e.stats)
}

// finish judges every note whose window closed before the session did and
// drops the rest
func (e *Engine) finish(now time.Time, manual bool, ev *events) *Summary {
	e.running = false
	end := e.started.Add(e.duration)
	if now.Before(end) {
		end = now
	}
	for _, j := range e.judge.Expire(end) {
		e.apply(j, ev)
	}
	dropped := e.judge.CancelAll()
	elapsed := now.Sub(e.started)
	if elapsed > e.duration {
		elapsed = e.duration
	}
	return &Summary{
		Stats:    e.stats,
		Spawned:  e.spawned,
		Dropped:  dropped,
		Elapsed:  elapsed,
		Duration: e.duration,
		Manual:   manual,
	}
}

// Press judges an input. The second return is false when no session is
// running and the input was ignored.
func (e *Engine) Press(symbol game.Symbol) (game.Judgement, bool) {
	var ev events
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return game.Judgement{}, false
	}
	now := e.now()
	// Overdue notes resolve first, so a press never lands on a closed window
	for _, expired := range e.judge.Expire(now) {
		e.apply(expired, &ev)
	}
	j := e.judge.Press(symbol, now)
	e.apply(j, &ev)
	e.mu.Unlock()
	e.deliver(&ev)
	return j, true
}

// Stop ends the session early. Notes already past their window are missed,
// the rest are cancelled before OnEnd runs, so no judgement can follow the
// summary.
func (e *Engine) Stop() {
	var ev events
	e.mu.Lock()
	if e.running {
		ev.end = e.finish(e.now(), true, &ev)
	}
	e.mu.Unlock()
	e.deliver(&ev)
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := State{
		Running: e.running,
		Stats:   e.stats,
		Speed:   e.speed,
		Loops:   e.cfg.Sequence.Loops(),
		Live:    e.judge.Live(),
	}
	if e.running {
		s.Elapsed = e.now().Sub(e.started)
		s.Remaining = e.duration - s.Elapsed
		if s.Remaining < 0 {
			s.Remaining = 0
		}
	}
	return s
}
