package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/brain"
	"github.com/mohammedhamoda/neurorhythm/internal/engine"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/theme"
)

const (
	Spacing     = 8 // columns between pads
	FlashFrames = 30
	sideCol     = 3
)

// HUD draws a session onto a renderer: a row of pads lit while a note is
// live, a timer under each showing what is left of its window, and stats.
type HUD struct {
	R     Renderer
	Theme theme.Theme
	Title string
	Pads  []game.Symbol
	Keys  []rune
}

func (h *HUD) column(i int) uint16 {
	columns, _ := h.R.Size()
	c := columns/2 + Spacing*(2*i-(len(h.Pads)-1))/2 - theme.PadWidth/2
	if c < 1 {
		c = 1
	}
	return uint16(c)
}

func (h *HUD) padRow() uint16 {
	_, rows := h.R.Size()
	return uint16(rows / 2)
}

func (h *HUD) index(s game.Symbol) int {
	for i, p := range h.Pads {
		if p == s {
			return i
		}
	}
	return -1
}

// remaining is the unused share of a note's window
func remaining(n game.Note, now time.Time) float64 {
	life := n.Deadline.Sub(n.SpawnTime)
	if life <= 0 {
		return 0
	}
	return float64(n.Deadline.Sub(now)) / float64(life)
}

func minutes(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func (h *HUD) Draw(s engine.State, now time.Time) {
	row := h.padRow()
	lit := make([]bool, len(h.Pads))
	left := make([]float64, len(h.Pads))
	for _, n := range s.Live {
		i := h.index(n.Symbol)
		if i < 0 {
			continue
		}
		// The oldest note of a pad is the one a press would match
		if r := remaining(n, now); !lit[i] || r < left[i] {
			lit[i], left[i] = true, r
		}
	}

	for i, p := range h.Pads {
		col := h.column(i)
		h.R.Fill(row, col, h.Theme.RenderPad(i, p, lit[i]))
		h.R.Fill(row+1, col, h.Theme.RenderTimer(i, left[i]))
		if i < len(h.Keys) {
			h.R.Fill(row+2, col, fmt.Sprintf(" [%c] ", h.Keys[i]))
		}
	}

	_, rows := h.R.Size()
	h.R.Fill(1, sideCol, h.Title)
	h.R.Fill(3, sideCol, fmt.Sprintf("      Hits:  %6v", s.Stats.Hits))
	h.R.Fill(4, sideCol, fmt.Sprintf("    Misses:  %6v", s.Stats.Misses))
	h.R.Fill(5, sideCol, fmt.Sprintf("  Accuracy:  %5v%%", s.Stats.Accuracy()))
	h.R.Fill(6, sideCol, fmt.Sprintf("     Speed:  %5.2fx", s.Speed))
	h.R.Fill(7, sideCol, fmt.Sprintf("     Loops:  %6v", s.Loops))
	h.R.Fill(8, sideCol, fmt.Sprintf(" Remaining:  %6v", minutes(s.Remaining)))
	h.R.Fill(uint16(rows-1), sideCol, "Esc ends the session")
}

// Flash shows an outcome under the pad it was judged on, or under the
// middle of the row for inputs that matched nothing
func (h *HUD) Flash(j game.Judgement) {
	col, _ := h.R.Size()
	col = col/2 - theme.PadWidth/2
	if nil != j.Note {
		if i := h.index(j.Note.Symbol); i >= 0 {
			col = int(h.column(i))
		}
	}
	h.R.AddDecoration(uint16(col), h.padRow()+3, h.Theme.RenderOutcome(j.Outcome), FlashFrames)
}

// End draws the closing summary with the brain state analysis
func (h *HUD) End(sum engine.Summary, role game.Role) {
	h.R.Clear()
	columns, _ := h.R.Size()

	title := "Session complete"
	if sum.Manual {
		title = "Session ended early"
	}
	lines := []string{
		"\033[1m" + title + "\033[0m",
		"",
		fmt.Sprintf("      Hits:  %v", sum.Stats.Hits),
		fmt.Sprintf("    Misses:  %v", sum.Stats.Misses),
		fmt.Sprintf("  Accuracy:  %v%%", sum.Stats.Accuracy()),
		fmt.Sprintf("    Played:  %v of %v", minutes(sum.Elapsed), minutes(sum.Duration)),
		"",
	}
	lines = append(lines, Analysis(role, sum.Stats.Accuracy(), columns-2*sideCol)...)
	lines = append(lines, "", "Press any key")

	for i, l := range lines {
		h.R.Fill(uint16(2+i), sideCol, l)
	}
	h.R.Flush()
}

// Analysis lays out the brain state of an accuracy as wrapped lines
func Analysis(role game.Role, accuracy, width int) []string {
	st := brain.Lookup(role, accuracy)
	lines := []string{"Brain state: " + st.Name}
	for _, f := range st.Features {
		lines = append(lines, Wrap("  - "+f, width)...)
	}
	lines = append(lines, "")
	lines = append(lines, Wrap(st.Interpretation, width)...)
	if note := brain.Note(role); note != "" {
		lines = append(lines, "")
		lines = append(lines, Wrap(note, width)...)
	}
	lines = append(lines, "")
	return append(lines, Wrap(brain.Footer, width)...)
}

// Wrap breaks text on spaces into lines of at most width runes. Words
// longer than width get a line of their own.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var line strings.Builder
	n := 0
	for _, word := range strings.Fields(text) {
		w := len([]rune(word))
		if n > 0 && n+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += w
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
