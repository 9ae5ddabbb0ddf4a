package parser

import (
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/sequence"
	"github.com/pkg/errors"
)

// DefaultParser reads pattern files made of one directive per line:
//
//	# comment
//	name: warm up
//	flat: x s x s       beats appended to a flat pattern
//	bar 5: x _ s x      a flat bar appended 5 times
//	segment 20: C4      a segment replayed 20 times
//
// A file is either flat (flat/bar lines) or segmented, never both.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*sequence.Definition, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read pattern %s", file)
	}
	return p.ParseString(string(data))
}

func (p *DefaultParser) symbols(s string) []game.Symbol {
	fields := strings.Fields(s)
	out := make([]game.Symbol, len(fields))
	for i, f := range fields {
		out[i] = game.Symbol(f)
	}
	return out
}

// count reads the number out of "bar 5" or "segment 20"
func (p *DefaultParser) count(directive string) (int, error) {
	parts := strings.Fields(directive)
	if len(parts) != 2 {
		return 0, errors.Errorf("%q needs a repeat count", directive)
	}
	n, err := strconv.Atoi(parts[1])
	if nil != err {
		return 0, errors.Wrapf(err, "bad repeat count in %q", directive)
	}
	if n < 0 {
		return 0, errors.Errorf("negative repeat count in %q", directive)
	}
	return n, nil
}

func (p *DefaultParser) ParseString(data string) (*sequence.Definition, error) {
	def := sequence.Definition{}
	str := strings.ReplaceAll(data, "\r", "")

	for i, line := range strings.Split(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sep := strings.Index(line, ":")
		if sep < 0 {
			return nil, errors.Errorf("line %d: missing ':'", i+1)
		}
		directive := strings.ToLower(strings.TrimSpace(line[:sep]))
		rest := strings.TrimSpace(line[sep+1:])

		switch {
		case directive == "name":
			def.Name = rest
		case directive == "flat":
			def.Flat = append(def.Flat, p.symbols(rest)...)
		case strings.HasPrefix(directive, "bar"):
			n, err := p.count(directive)
			if nil != err {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			bar := p.symbols(rest)
			for j := 0; j < n; j++ {
				def.Flat = append(def.Flat, bar...)
			}
		case strings.HasPrefix(directive, "segment"):
			n, err := p.count(directive)
			if nil != err {
				return nil, errors.Wrapf(err, "line %d", i+1)
			}
			// Empty segments are kept, the provider skips them
			def.Segments = append(def.Segments, game.Segment{Notes: p.symbols(rest), Repeats: n})
		default:
			return nil, errors.Errorf("line %d: unknown directive %q", i+1, directive)
		}
	}

	if len(def.Flat) > 0 && len(def.Segments) > 0 {
		return nil, errors.New("pattern mixes flat and segment lines")
	}
	if def.Beats() == 0 {
		return nil, errors.New("pattern has no beats")
	}
	return &def, nil
}
