package theme

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

type DefaultTheme struct {
}

// PadWidth is the printed width of a pad, label included
const PadWidth = 5

func (t *DefaultTheme) RenderPad(index int, symbol game.Symbol, lit bool) string {
	label := fmt.Sprintf("%-3v", symbol)
	if !lit {
		return fmt.Sprintf("\033[38;5;240m%v %v\033[0m", offSym, label)
	}
	c := getPadColor(index)
	return fmt.Sprintf("\033[1;38;2;%v;%v;%vm%v %v\033[0m", c.R, c.G, c.B, onSym, label)
}

// RenderTimer draws what is left of a note's window, remaining in [0, 1]
func (t *DefaultTheme) RenderTimer(index int, remaining float64) string {
	if remaining < 0 {
		remaining = 0
	} else if remaining > 1 {
		remaining = 1
	}
	n := int(math.Ceil(remaining * PadWidth))
	c := getPadColor(index)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m%v",
		c.R, c.G, c.B, strings.Repeat(barSym, n), strings.Repeat(" ", PadWidth-n))
}

func (t *DefaultTheme) RenderOutcome(o game.Outcome) string {
	if o == game.Hit {
		return "\033[1;32m HIT \033[0m"
	}
	return "\033[1;31mMISS \033[0m"
}

const (
	onSym  = "⬤"
	offSym = "◯"
	barSym = "▬"
)

var padColors = []color.RGBA{
	{236, 30, 0, 255},  // red
	{0, 118, 236, 255}, // blue
	{236, 195, 0, 255}, // yellow
	{0, 236, 128, 255}, // green
	{106, 0, 236, 255}, // purple
	{236, 128, 0, 255}, // orange
}

func getPadColor(i int) color.RGBA {
	if i < 0 || i >= len(padColors) {
		return color.RGBA{255, 255, 255, 255}
	}
	return padColors[i]
}
