package parser

import "github.com/mohammedhamoda/neurorhythm/internal/sequence"

type Parser interface {
	Parse(file string) (*sequence.Definition, error)
}
