package score

import (
	"math"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

// Stats only ever counts up during a session
type Stats struct {
	Hits   int
	Misses int
}

func (s *Stats) Add(o game.Outcome) {
	if o == game.Hit {
		s.Hits++
	} else {
		s.Misses++
	}
}

func (s Stats) Total() int {
	return s.Hits + s.Misses
}

// Accuracy is the rounded hit percentage, 0 when nothing was judged
func (s Stats) Accuracy() int {
	return Accuracy(s.Hits, s.Misses)
}

func Accuracy(hits, misses int) int {
	total := hits + misses
	if total <= 0 || hits <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(hits) / float64(total)))
}
