package game

// A Segment is replayed Repeats times before the sequence moves on
type Segment struct {
	Notes   []Symbol
	Repeats int
}

func (s Segment) Empty() bool {
	return len(s.Notes) == 0 || s.Repeats <= 0
}
