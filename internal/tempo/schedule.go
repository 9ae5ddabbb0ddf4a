package tempo

import (
	"math"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

// Progress is what a tempo schedule may look at
type Progress struct {
	Fraction float64 // elapsed / total session time, 0..1
	Loops    int     // completed passes over the pattern
}

// Schedule gives the base speed before the accuracy axis is applied
type Schedule interface {
	Base(p Progress) float64
}

type ScheduleFunc func(p Progress) float64

func (f ScheduleFunc) Base(p Progress) float64 {
	return f(p)
}

// BaseTempo is the speed every schedule starts from
const BaseTempo = 1.0

// Steady never changes
var Steady = ScheduleFunc(func(Progress) float64 {
	return BaseTempo
})

// TimeTierBonus steps up as the session progresses:
// 0 up to a third, +0.2 up to two thirds, +0.4 after.
func TimeTierBonus(fraction float64) float64 {
	if fraction > 0.66 {
		return 0.4
	} else if fraction > 0.33 {
		return 0.2
	}
	return 0
}

var TimeTiered = ScheduleFunc(func(p Progress) float64 {
	return BaseTempo + TimeTierBonus(p.Fraction)
})

// Growth multiplies the tempo by Rate every Cadence loops
type Growth struct {
	Rate    float64
	Cadence int
}

func (g Growth) Base(p Progress) float64 {
	if g.Cadence <= 0 || p.Loops <= 0 {
		return BaseTempo
	}
	return BaseTempo * math.Pow(g.Rate, math.Floor(float64(p.Loops)/float64(g.Cadence)))
}

// Oscillation alternates between BaseTempo and BaseTempo*Boost, switching
// every Period loops and starting at baseline.
type Oscillation struct {
	Boost  float64
	Period int
}

func (o Oscillation) Base(p Progress) float64 {
	if o.Period <= 0 || p.Loops < 0 {
		return BaseTempo
	}
	if (p.Loops/o.Period)%2 == 1 {
		return BaseTempo * o.Boost
	}
	return BaseTempo
}

var clinical = map[game.Role]Schedule{
	game.Schizophrenia: Growth{Rate: 1.05, Cadence: 2},
	game.Autism:        Growth{Rate: 1.03, Cadence: 3},
	game.Depression:    Growth{Rate: 1.08, Cadence: 1},
	game.Anxiety:       Growth{Rate: 1.04, Cadence: 4},
	game.ADHD:          Oscillation{Boost: 1.2, Period: 2},
}

// Clinical returns the loop driven schedule for a role, Steady when the role
// is not known.
func Clinical(role game.Role) Schedule {
	if s, ok := clinical[role]; ok {
		return s
	}
	return Steady
}
