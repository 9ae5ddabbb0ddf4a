package engine

import (
	"math"
	"testing"
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/clock"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/score"
	"github.com/mohammedhamoda/neurorhythm/internal/sequence"
	"github.com/mohammedhamoda/neurorhythm/internal/tempo"
)

type played struct {
	symbol game.Symbol
	at     float64
}

type recorder struct {
	played []played
}

func (r *recorder) Schedule(s game.Symbol, at float64) {
	r.played = append(r.played, played{s, at})
}

// harness keeps the wall clock and the audio clock in step: the audio clock
// reads 1 + seconds since start
type harness struct {
	e     *Engine
	audio *recorder
	clk   *clock.Manual

	start, wall time.Time

	spawned []game.Note
	judged  []game.Judgement
	ends    []Summary
}

func newHarness(cfg Config) *harness {
	h := &harness{
		audio: &recorder{},
		clk:   &clock.Manual{},
		start: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	h.wall = h.start
	h.clk.Set(1)
	h.e = New(cfg, h.clk, h.audio)
	h.e.now = func() time.Time { return h.wall }
	h.e.OnSpawn = func(n game.Note) { h.spawned = append(h.spawned, n) }
	h.e.OnJudge = func(j game.Judgement, _ score.Stats) { h.judged = append(h.judged, j) }
	h.e.OnEnd = func(s Summary) { h.ends = append(h.ends, s) }
	return h
}

func (h *harness) advance(d time.Duration) {
	h.wall = h.wall.Add(d)
	h.clk.Set(1 + h.wall.Sub(h.start).Seconds())
}

// run ticks every step until the wall clock reaches offset from start
func (h *harness) run(offset, step time.Duration, each func()) {
	for h.wall.Sub(h.start) < offset {
		h.advance(step)
		h.e.Tick()
		if each != nil {
			each()
		}
	}
}

func scenario(notes []game.Symbol, policy Policy) Config {
	return Config{
		Sequence:     sequence.NewFlat(notes),
		Tempo:        tempo.New(tempo.PianoConfig, tempo.Steady),
		HitWindow:    1200 * time.Millisecond,
		BaseInterval: 1.0,
		LeadIn:       1.0,
		Policy:       policy,
	}
}

var xsxs = []game.Symbol{"x", "s", "x", "s"}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHitInsideWindow(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	if err := h.e.Start(time.Minute); nil != err {
		t.Fatal(err)
	}
	h.run(time.Second, 100*time.Millisecond, nil)
	if len(h.spawned) != 1 || h.spawned[0].Symbol != "x" {
		t.Fatalf("expected x to spawn after the lead-in, got %+v", h.spawned)
	}
	if len(h.audio.played) != 1 || h.audio.played[0].at != 2.0 {
		t.Fatalf("expected x scheduled at 2.0, got %+v", h.audio.played)
	}

	h.advance(300 * time.Millisecond)
	j, ok := h.e.Press("x")
	if !ok || j.Outcome != game.Hit || j.Delta != 300*time.Millisecond {
		t.Fatalf("expected a hit 300ms after spawn, got %+v", j)
	}
	if st := h.e.State().Stats; st.Hits != 1 || st.Misses != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestTimeoutsSlowDownThenRecover(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(time.Minute)

	// x spawns at 1.0s and times out after 2.2s, s spawns at 2.0s and
	// times out after 3.2s
	h.run(2300*time.Millisecond, 100*time.Millisecond, nil)
	if len(h.judged) != 1 || !h.judged[0].Timeout {
		t.Fatalf("expected one timeout, got %+v", h.judged)
	}
	if h.e.cfg.Tempo.Multiplier() != 1 {
		t.Fatal("a single miss must not slow down")
	}

	h.run(3300*time.Millisecond, 100*time.Millisecond, nil)
	if len(h.judged) != 2 {
		t.Fatalf("expected two timeouts, got %+v", h.judged)
	}
	if got := h.e.State().Speed; !near(got, 0.9) {
		t.Fatalf("expected speed 0.9 after two misses, got %v", got)
	}

	h.advance(100 * time.Millisecond)
	if j, _ := h.e.Press("x"); j.Outcome != game.Hit {
		t.Fatalf("expected a hit, got %+v", j)
	}
	if got := h.e.cfg.Tempo.Multiplier(); !near(got, 0.918) {
		t.Fatalf("expected recovery to 0.918, got %v", got)
	}

	// The beat at 5.0 was planned at speed 1, the one after it at the
	// recovered speed
	h.run(5500*time.Millisecond, 100*time.Millisecond, nil)
	if len(h.audio.played) < 5 {
		t.Fatalf("expected 5 beats, got %+v", h.audio.played)
	}
	if h.audio.played[3].at != 5.0 {
		t.Fatalf("expected the fourth beat at 5.0, got %v", h.audio.played[3].at)
	}
	if !near(h.audio.played[4].at, 5.0+1/0.918) {
		t.Fatalf("expected the fifth beat at %v, got %v", 5.0+1/0.918, h.audio.played[4].at)
	}
}

func TestSessionEndsOnce(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(5 * time.Second)
	h.run(8*time.Second, 100*time.Millisecond, nil)

	if len(h.ends) != 1 {
		t.Fatalf("expected exactly one end, got %d", len(h.ends))
	}
	s := h.ends[0]
	if s.Manual || s.Elapsed != 5*time.Second || s.Duration != 5*time.Second {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Spawned != 4 || s.Stats.Misses != 3 || s.Dropped != 1 {
		t.Fatalf("expected 4 spawned, 3 missed, 1 dropped, got %+v", s)
	}
	if s.Stats.Total()+s.Dropped != s.Spawned {
		t.Fatal("every spawned note must be judged or dropped")
	}
	if _, ok := h.e.Press("x"); ok {
		t.Fatal("input after the end must be ignored")
	}
	if h.e.Running() {
		t.Fatal("engine still running")
	}
}

func TestStopCancelsTimeouts(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(time.Minute)
	h.run(time.Second, 100*time.Millisecond, nil)

	h.e.Stop()
	if len(h.ends) != 1 || !h.ends[0].Manual || h.ends[0].Dropped != 1 {
		t.Fatalf("unexpected end %+v", h.ends)
	}

	h.run(10*time.Second, 100*time.Millisecond, nil)
	h.e.Stop()
	if len(h.judged) != 0 {
		t.Fatalf("judgement after stop: %+v", h.judged)
	}
	if len(h.ends) != 1 {
		t.Fatalf("expected one end, got %d", len(h.ends))
	}
}

func TestStallPastEndMissesClosedWindows(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(10 * time.Second)
	h.run(time.Second, 100*time.Millisecond, nil)

	// x closed at 2.2s, long before the next tick
	h.advance(20 * time.Second)
	h.e.Tick()
	if len(h.ends) != 1 {
		t.Fatalf("expected one end, got %d", len(h.ends))
	}
	s := h.ends[0]
	if s.Spawned != 1 || s.Stats.Misses != 1 || s.Dropped != 0 {
		t.Fatalf("expected the overdue note missed, got %+v", s)
	}
	if len(h.judged) != 1 || !h.judged[0].Timeout {
		t.Fatalf("expected one timeout, got %+v", h.judged)
	}
}

func TestStopMissesClosedWindows(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(time.Minute)
	h.run(time.Second, 100*time.Millisecond, nil)

	h.advance(5 * time.Second)
	h.e.Stop()
	if len(h.ends) != 1 {
		t.Fatalf("expected one end, got %d", len(h.ends))
	}
	s := h.ends[0]
	if !s.Manual || s.Stats.Misses != 1 || s.Dropped != 0 {
		t.Fatalf("expected the overdue note missed, got %+v", s)
	}
}

func TestPressSkipsClosedWindows(t *testing.T) {
	h := newHarness(scenario([]game.Symbol{"x", "x"}, Skip))
	h.e.Start(time.Minute)
	h.run(2*time.Second, 100*time.Millisecond, nil)
	if len(h.spawned) != 2 {
		t.Fatalf("expected two notes, got %+v", h.spawned)
	}

	// No tick between the first window closing and the press
	h.advance(250 * time.Millisecond)
	j, ok := h.e.Press("x")
	if !ok || j.Outcome != game.Hit || j.Note.ID != h.spawned[1].ID {
		t.Fatalf("expected a hit on the second note, got %+v", j)
	}
	if len(h.judged) != 2 || !h.judged[0].Timeout || h.judged[0].Note.ID != h.spawned[0].ID {
		t.Fatalf("expected the first note to time out before the hit, got %+v", h.judged)
	}
	if st := h.e.State().Stats; st.Hits != 1 || st.Misses != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestEveryNoteJudgedOnce(t *testing.T) {
	cfg := ForGame(game.Drums, "", nil)
	h := newHarness(cfg)
	h.e.Start(40 * time.Second)

	extras := 0
	h.run(45*time.Second, 50*time.Millisecond, func() {
		for _, n := range h.e.State().Live {
			if h.wall.Sub(n.SpawnTime) >= 300*time.Millisecond && n.ID%3 != 0 {
				h.e.Press(n.Symbol)
			}
		}
		if h.wall.Sub(h.start)%(5*time.Second) == 0 {
			if j, ok := h.e.Press("z"); ok && j.Note == nil {
				extras++
			}
		}
	})

	if len(h.ends) != 1 {
		t.Fatalf("expected one end, got %d", len(h.ends))
	}
	s := h.ends[0]
	seen := map[uint64]bool{}
	matched := 0
	for _, j := range h.judged {
		if j.Note == nil {
			continue
		}
		if seen[j.Note.ID] {
			t.Fatalf("note %d judged twice", j.Note.ID)
		}
		seen[j.Note.ID] = true
		matched++
	}
	if s.Spawned != len(h.spawned) {
		t.Fatalf("summary says %d spawned, saw %d", s.Spawned, len(h.spawned))
	}
	if matched != s.Spawned-s.Dropped {
		t.Fatalf("expected %d judged notes, got %d", s.Spawned-s.Dropped, matched)
	}
	if s.Stats.Total() != matched+extras {
		t.Fatalf("expected %d judgements, got %d", matched+extras, s.Stats.Total())
	}
	if s.Stats.Hits == 0 || s.Stats.Misses == 0 || extras == 0 {
		t.Fatalf("expected a mix of outcomes, got %+v with %d extras", s.Stats, extras)
	}
}

func TestScheduledOnGridWhenLate(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(time.Minute)
	h.advance(1350 * time.Millisecond)
	h.e.Tick()
	if len(h.audio.played) != 1 || h.audio.played[0].at != 2.0 {
		t.Fatalf("late tick must keep the grid time, got %+v", h.audio.played)
	}
	if h.spawned[0].Time != 2.0 {
		t.Fatalf("note carries the grid time, got %v", h.spawned[0].Time)
	}
}

func TestStallSkipsAhead(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(time.Minute)
	h.run(time.Second, 100*time.Millisecond, nil)

	h.advance(30500 * time.Millisecond)
	h.e.Tick()
	h.advance(100 * time.Millisecond)
	h.e.Tick()

	if len(h.audio.played) != 2 {
		t.Fatalf("expected a single beat after the stall, got %+v", h.audio.played)
	}
	if h.audio.played[1].at != 32.0 {
		t.Fatalf("expected the beat back on the grid at 32.0, got %v", h.audio.played[1].at)
	}
}

func TestStallBursts(t *testing.T) {
	h := newHarness(scenario(xsxs, Burst))
	h.e.Start(time.Minute)
	h.run(time.Second, 100*time.Millisecond, nil)

	h.advance(30500 * time.Millisecond)
	for i := 1; i <= 5; i++ {
		h.e.Tick()
		if len(h.audio.played) != 1+i {
			t.Fatalf("expected one overdue beat per tick, got %d after %d ticks", len(h.audio.played), i)
		}
	}
	if h.audio.played[1].at != 3.0 {
		t.Fatalf("burst must start from the first overdue beat, got %v", h.audio.played[1].at)
	}
}

func TestRestsAdvanceTheCursor(t *testing.T) {
	h := newHarness(scenario([]game.Symbol{"x", game.Rest, "s"}, Skip))
	h.e.Start(time.Minute)
	h.run(3*time.Second, 100*time.Millisecond, nil)

	if len(h.audio.played) != 2 {
		t.Fatalf("expected two sounds, got %+v", h.audio.played)
	}
	if h.audio.played[0] != (played{"x", 2.0}) || h.audio.played[1] != (played{"s", 4.0}) {
		t.Fatalf("unexpected schedule %+v", h.audio.played)
	}
}

func TestSilentClockNeverSpawns(t *testing.T) {
	wall := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	e := New(scenario(xsxs, Skip), clock.Func(func() float64 { return 0 }), nil)
	e.now = func() time.Time { return wall }
	spawns, ends := 0, 0
	e.OnSpawn = func(game.Note) { spawns++ }
	e.OnEnd = func(Summary) { ends++ }

	e.Start(3 * time.Second)
	for i := 0; i < 50; i++ {
		wall = wall.Add(100 * time.Millisecond)
		e.Tick()
	}
	if spawns != 0 {
		t.Fatalf("expected no beats without an audio clock, got %d", spawns)
	}
	if ends != 1 {
		t.Fatalf("the session must still end, got %d ends", ends)
	}
}

func TestTimeTierSpeed(t *testing.T) {
	cfg := scenario(nil, Skip)
	cfg.Tempo = tempo.New(tempo.PianoConfig, tempo.TimeTiered)
	h := newHarness(cfg)
	h.e.Start(10 * time.Second)

	h.run(3*time.Second, 100*time.Millisecond, nil)
	if got := h.e.State().Speed; got != 1.0 {
		t.Fatalf("expected 1.0 in the first third, got %v", got)
	}
	h.run(5*time.Second, 100*time.Millisecond, nil)
	if got := h.e.State().Speed; got != 1.2 {
		t.Fatalf("expected 1.2 half way, got %v", got)
	}
	h.run(7*time.Second, 100*time.Millisecond, nil)
	if got := h.e.State().Speed; got != 1.4 {
		t.Fatalf("expected 1.4 in the last third, got %v", got)
	}
}

func TestStartValidation(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	if err := h.e.Start(0); nil == err {
		t.Fatal("expected an error for a zero duration")
	}
	if err := h.e.Start(time.Minute); nil != err {
		t.Fatal(err)
	}
	if err := h.e.Start(time.Minute); nil == err {
		t.Fatal("expected an error for a second start")
	}
}

func TestRestartResets(t *testing.T) {
	h := newHarness(scenario(xsxs, Skip))
	h.e.Start(3 * time.Second)
	h.run(4*time.Second, 100*time.Millisecond, nil)
	if h.e.State().Stats.Total() == 0 {
		t.Fatal("expected judgements in the first session")
	}

	h.spawned = nil
	h.e.Start(time.Minute)
	if st := h.e.State(); st.Stats.Total() != 0 || len(st.Live) != 0 || st.Loops != 0 {
		t.Fatalf("state not reset: %+v", st)
	}
	h.run(5*time.Second, 100*time.Millisecond, nil)
	if len(h.spawned) == 0 || h.spawned[0].Symbol != "x" {
		t.Fatal("sequence must restart from the first beat")
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("burst"); nil != err || p != Burst {
		t.Fail()
	}
	if p, err := ParsePolicy(""); nil != err || p != Skip {
		t.Fail()
	}
	if _, err := ParsePolicy("later"); nil == err {
		t.Fail()
	}
}

func TestForGame(t *testing.T) {
	tests := []struct {
		id     game.ID
		role   game.Role
		window time.Duration
		strict bool
		lead   float64
	}{
		{game.Drums, "", 1200 * time.Millisecond, false, 1.5},
		{game.Piano, "", 800 * time.Millisecond, false, 1.0},
		{game.Piano, game.Anxiety, 1500 * time.Millisecond, true, 1.0},
		{game.Guitar, game.Anxiety, 1000 * time.Millisecond, false, 1.0},
	}
	for _, test := range tests {
		cfg := ForGame(test.id, test.role, nil)
		if cfg.HitWindow != test.window || cfg.Strict != test.strict || cfg.LeadIn != test.lead {
			t.Logf("%s/%s: unexpected config %+v", test.id, test.role, cfg)
			t.Fail()
		}
	}
}
