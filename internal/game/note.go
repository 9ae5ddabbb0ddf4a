package game

import (
	"time"
)

// Symbol is the identity of a pad or key, e.g. "x" or "C4"
type Symbol string

// Rest is the placeholder for a beat that plays nothing
const Rest Symbol = "_"

func (s Symbol) IsRest() bool {
	return s == Rest || s == ""
}

type Note struct {
	ID     uint64
	Symbol Symbol
	Time   float64 // The audio clock time the note was scheduled to sound at

	// This is state
	SpawnTime time.Time // Wall time the note became live, used for judging
	Deadline  time.Time // Wall time after which the note is a miss
}
