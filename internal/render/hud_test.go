package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/brain"
	"github.com/mohammedhamoda/neurorhythm/internal/engine"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/score"
	"github.com/mohammedhamoda/neurorhythm/internal/theme"
)

func newHUD(out *bytes.Buffer) (*HUD, *DefaultRenderer) {
	r := &DefaultRenderer{Out: out}
	return &HUD{
		R:     r,
		Theme: &theme.DefaultTheme{},
		Title: "drums",
		Pads:  game.Pads[game.Drums],
		Keys:  []rune("fj"),
	}, r
}

func TestDraw(t *testing.T) {
	var out bytes.Buffer
	h, r := newHUD(&out)
	now := time.Now()
	h.Draw(engine.State{
		Running: true,
		Stats:   score.Stats{Hits: 3, Misses: 1},
		Speed:   1.2,
		Live: []game.Note{
			{ID: 1, Symbol: "s", SpawnTime: now.Add(-time.Second), Deadline: now.Add(time.Second)},
		},
		Remaining: 90 * time.Second,
	}, now)
	r.Flush()

	frame := out.String()
	for _, want := range []string{"drums", "75%", "1.20x", "1:30", "[f]", "[j]", "◯ x", "⬤ s"} {
		if !strings.Contains(frame, want) {
			t.Logf("expected %q in the frame", want)
			t.Fail()
		}
	}
}

func TestColumnsAreCentered(t *testing.T) {
	h, _ := newHUD(&bytes.Buffer{})
	left, right := int(h.column(0)), int(h.column(1))
	if right-left != Spacing {
		t.Fatalf("expected pads %v apart, got %v", Spacing, right-left)
	}
	if mid := (left + right + 5) / 2; mid != 40 && mid != 41 {
		t.Fatalf("expected pads around column 40, got %v", mid)
	}
}

func TestRemaining(t *testing.T) {
	now := time.Now()
	n := game.Note{SpawnTime: now, Deadline: now.Add(time.Second)}
	if r := remaining(n, now.Add(250*time.Millisecond)); r != 0.75 {
		t.Fatalf("expected 0.75, got %v", r)
	}
	if r := remaining(game.Note{SpawnTime: now, Deadline: now}, now); r != 0 {
		t.Fatalf("expected 0 for an empty window, got %v", r)
	}
}

func TestFlashDecays(t *testing.T) {
	var out bytes.Buffer
	h, r := newHUD(&out)
	h.Flash(game.Judgement{Outcome: game.Hit, Note: &game.Note{Symbol: "x"}})
	h.Flash(game.Judgement{Outcome: game.Miss})
	if len(r.decorations) != 2 {
		t.Fatalf("expected 2 decorations, got %d", len(r.decorations))
	}
	for i := 0; i <= FlashFrames; i++ {
		r.tickDecorations()
	}
	if len(r.decorations) != 0 {
		t.Fatalf("expected decorations to expire, got %d", len(r.decorations))
	}
}

func TestEnd(t *testing.T) {
	var out bytes.Buffer
	h, _ := newHUD(&out)
	h.End(engine.Summary{
		Stats:    score.Stats{Hits: 9, Misses: 1},
		Elapsed:  5 * time.Minute,
		Duration: 5 * time.Minute,
	}, game.ADHD)

	screen := out.String()
	st := brain.Lookup(game.ADHD, 90)
	for _, want := range []string{"Session complete", "90%", "5:00 of 5:00", st.Name, "Press any key"} {
		if !strings.Contains(screen, want) {
			t.Logf("expected %q on the end screen", want)
			t.Fail()
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 100, []string{"one two three"}},
		{"tremendously long", 4, []string{"tremendously", "long"}},
	}
	for _, test := range tests {
		got := Wrap(test.text, test.width)
		if strings.Join(got, "|") != strings.Join(test.want, "|") {
			t.Logf("Wrap(%q, %v): expected %q, got %q", test.text, test.width, test.want, got)
			t.Fail()
		}
	}
}
