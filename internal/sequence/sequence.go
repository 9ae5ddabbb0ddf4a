package sequence

import (
	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

// Provider hands out one symbol per beat, forever
type Provider interface {
	Next() game.Symbol
	// Reset moves the cursor back to the first beat and clears the loop count
	Reset()
	// Loops is the number of completed passes over the whole pattern
	Loops() int
}

// Definition is either a flat list of symbols or a list of segments.
// Segments win when both are set.
type Definition struct {
	Name     string
	Flat     []game.Symbol
	Segments []game.Segment
}

func (d Definition) Segmented() bool {
	return len(d.Segments) > 0
}

func (d Definition) Beats() int {
	if !d.Segmented() {
		return len(d.Flat)
	}
	n := 0
	for _, s := range d.Segments {
		if !s.Empty() {
			n += len(s.Notes) * s.Repeats
		}
	}
	return n
}

func New(d Definition) Provider {
	if d.Segmented() {
		return NewSegmented(d.Segments)
	}
	return NewFlat(d.Flat)
}

type Flat struct {
	notes []game.Symbol
	pos   int
	loops int
}

func NewFlat(notes []game.Symbol) *Flat {
	return &Flat{notes: notes}
}

func (f *Flat) Next() game.Symbol {
	if len(f.notes) == 0 {
		return game.Rest
	}
	s := f.notes[f.pos]
	f.pos++
	if f.pos == len(f.notes) {
		f.pos = 0
		f.loops++
	}
	return s
}

func (f *Flat) Reset() {
	f.pos, f.loops = 0, 0
}

func (f *Flat) Loops() int {
	return f.loops
}

type Segmented struct {
	segments []game.Segment
	playable bool

	seg    int // current segment
	note   int // position within the segment's notes
	repeat int // completed passes over the current segment
	loops  int
}

func NewSegmented(segments []game.Segment) *Segmented {
	s := &Segmented{segments: segments}
	for _, seg := range segments {
		if !seg.Empty() {
			s.playable = true
			break
		}
	}
	return s
}

func (s *Segmented) Next() game.Symbol {
	if !s.playable {
		return game.Rest
	}
	// At least one segment is playable, so this terminates within one pass
	for s.segments[s.seg].Empty() {
		s.nextSegment()
	}

	seg := s.segments[s.seg]
	sym := seg.Notes[s.note]
	s.note++
	if s.note == len(seg.Notes) {
		s.note = 0
		s.repeat++
		if s.repeat >= seg.Repeats {
			s.repeat = 0
			s.nextSegment()
		}
	}
	return sym
}

func (s *Segmented) nextSegment() {
	s.seg++
	if s.seg == len(s.segments) {
		s.seg = 0
		s.loops++
	}
}

func (s *Segmented) Reset() {
	s.seg, s.note, s.repeat, s.loops = 0, 0, 0, 0
}

func (s *Segmented) Loops() int {
	return s.loops
}
