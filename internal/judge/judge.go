package judge

import (
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

// Judge tracks live notes and decides hits and misses. Every spawned note is
// resolved at most once. It is not safe for concurrent use.
type Judge struct {
	window time.Duration
	strict bool // at most one live note per symbol

	nextID uint64
	live   []*game.Note         // spawn order
	timers map[uint64]time.Time // note id -> deadline
}

func New(window time.Duration, strict bool) *Judge {
	return &Judge{
		window: window,
		strict: strict,
		timers: map[uint64]time.Time{},
	}
}

func (j *Judge) Window() time.Duration {
	return j.window
}

// Spawn makes a note live and arms its timeout. In strict mode a live note
// with the same symbol is resolved as a timeout miss first, and returned.
func (j *Judge) Spawn(symbol game.Symbol, at float64, now time.Time) (*game.Note, *game.Judgement) {
	var superseded *game.Judgement
	if j.strict {
		if i := j.find(symbol); i >= 0 {
			n := j.remove(i)
			superseded = &game.Judgement{Outcome: game.Miss, Note: n, Timeout: true}
		}
	}

	j.nextID++
	note := &game.Note{
		ID:        j.nextID,
		Symbol:    symbol,
		Time:      at,
		SpawnTime: now,
		Deadline:  now.Add(j.window),
	}
	j.live = append(j.live, note)
	j.timers[note.ID] = note.Deadline
	return note, superseded
}

// Press judges an input against the oldest live note with that symbol
func (j *Judge) Press(symbol game.Symbol, now time.Time) game.Judgement {
	i := j.find(symbol)
	if i < 0 {
		// Nothing to hit, an extra input
		return game.Judgement{Outcome: game.Miss}
	}
	n := j.remove(i)

	delta := now.Sub(n.SpawnTime)
	if delta < 0 {
		delta = -delta
	}
	outcome := game.Miss
	if delta <= j.window {
		outcome = game.Hit
	}
	return game.Judgement{Outcome: outcome, Note: n, Delta: delta}
}

// Expire resolves every note whose deadline has passed as a miss, oldest
// first
func (j *Judge) Expire(now time.Time) []game.Judgement {
	var out []game.Judgement
	for i := 0; i < len(j.live); {
		n := j.live[i]
		deadline, ok := j.timers[n.ID]
		if !ok || !now.After(deadline) {
			i++
			continue
		}
		j.remove(i)
		out = append(out, game.Judgement{Outcome: game.Miss, Note: n, Timeout: true})
	}
	return out
}

// CancelAll disarms every timer and forgets every live note without judging
// them. It returns how many notes were dropped.
func (j *Judge) CancelAll() int {
	n := len(j.live)
	j.live = nil
	j.timers = map[uint64]time.Time{}
	return n
}

// Live returns a copy of the live notes in spawn order
func (j *Judge) Live() []game.Note {
	out := make([]game.Note, len(j.live))
	for i, n := range j.live {
		out[i] = *n
	}
	return out
}

func (j *Judge) Pending() int {
	return len(j.timers)
}

func (j *Judge) find(symbol game.Symbol) int {
	for i, n := range j.live {
		if n.Symbol == symbol {
			return i
		}
	}
	return -1
}

// remove drops a note from the live set and the timer table together
func (j *Judge) remove(i int) *game.Note {
	n := j.live[i]
	j.live = append(j.live[:i], j.live[i+1:]...)
	delete(j.timers, n.ID)
	return n
}
