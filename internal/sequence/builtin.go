package sequence

import (
	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

func symbols(ss ...string) []game.Symbol {
	out := make([]game.Symbol, len(ss))
	for i, s := range ss {
		out[i] = game.Symbol(s)
	}
	return out
}

func repeat(n int, bar []game.Symbol) []game.Symbol {
	out := make([]game.Symbol, 0, n*len(bar))
	for i := 0; i < n; i++ {
		out = append(out, bar...)
	}
	return out
}

func flatten(bars ...[]game.Symbol) []game.Symbol {
	out := []game.Symbol{}
	for _, b := range bars {
		out = append(out, b...)
	}
	return out
}

// Drums is 100 beats: five blocks of a four beat bar played five times
var Drums = Definition{
	Name: "drums",
	Flat: flatten(
		repeat(5, symbols("x", "s", "x", "s")),
		repeat(5, symbols("x", "x", "s", "s")),
		repeat(5, symbols("x", "_", "s", "x")),
		repeat(5, symbols("x", "s", "s", "x")),
		repeat(5, symbols("x", "s", "x", "s")),
	),
}

var Piano = Definition{
	Name: "piano",
	Segments: []game.Segment{
		{Notes: symbols("C4"), Repeats: 20},
		{Notes: symbols("G4"), Repeats: 20},
		{Notes: symbols("A4"), Repeats: 20},
		{Notes: symbols("F4"), Repeats: 20},
		{Notes: symbols("C4"), Repeats: 20},
	},
}

var Guitar = Definition{
	Name: "guitar",
	Flat: flatten(
		repeat(4, symbols("E2", "A2", "D3", "G3")),
		repeat(4, symbols("E2", "_", "D3", "_")),
		repeat(4, symbols("G3", "D3", "A2", "E2")),
	),
}

var roleDefinitions = map[game.Role]Definition{
	game.Schizophrenia: {
		Name: "schizophrenia",
		Segments: []game.Segment{
			{Notes: symbols("C4"), Repeats: 8},
			{Notes: symbols("C4", "G4"), Repeats: 4},
			{Notes: symbols("C4", "G4", "A4", "F4"), Repeats: 2},
		},
	},
	game.Autism: {
		Name: "autism",
		Segments: []game.Segment{
			{Notes: symbols("C4", "G4"), Repeats: 6},
			{Notes: symbols("C4", "G4", "A4"), Repeats: 4},
			{Notes: symbols("C4", "G4", "A4", "F4"), Repeats: 4},
			{Notes: symbols("F4", "A4", "G4", "C4"), Repeats: 2},
		},
	},
	game.Depression: {
		Name: "depression",
		Segments: []game.Segment{
			{Notes: symbols("C4"), Repeats: 4},
			{Notes: symbols("C4", "C4", "G4"), Repeats: 4},
			{Notes: symbols("C4", "G4", "A4", "G4"), Repeats: 4},
		},
	},
	game.ADHD: {
		Name: "adhd",
		Segments: []game.Segment{
			{Notes: symbols("C4", "A4"), Repeats: 3},
			{Notes: symbols("G4", "F4", "G4"), Repeats: 2},
			{Notes: symbols("A4", "C4", "F4", "G4"), Repeats: 2},
			{Notes: symbols("F4"), Repeats: 4},
		},
	},
	game.Anxiety: {
		Name: "anxiety",
		Segments: []game.Segment{
			{Notes: symbols("C4", "G4", "A4", "F4"), Repeats: 5},
			{Notes: symbols("F4", "A4", "G4", "C4"), Repeats: 5},
		},
	},
}

// ForGame picks the pattern for a game. Piano follows the player's role
// when one is known.
func ForGame(id game.ID, role game.Role) Definition {
	switch id {
	case game.Drums:
		return Drums
	case game.Guitar:
		return Guitar
	}
	if d, ok := roleDefinitions[role]; ok {
		return d
	}
	return Piano
}
