package theme

import "github.com/mohammedhamoda/neurorhythm/internal/game"

type Theme interface {
	RenderPad(index int, symbol game.Symbol, lit bool) string
	RenderTimer(index int, remaining float64) string
	RenderOutcome(o game.Outcome) string
}
