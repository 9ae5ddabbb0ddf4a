package game

import (
	"time"
)

type Outcome uint8

const (
	Miss Outcome = iota
	Hit
)

func (o Outcome) String() string {
	if o == Hit {
		return "hit"
	}
	return "miss"
}

type Judgement struct {
	Outcome Outcome
	Note    *Note         // nil when the input matched no live note
	Delta   time.Duration // |input - spawn|, zero for timeouts and extra inputs
	Timeout bool          // The note was never matched inside its window
}
