package engine

import (
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/sequence"
	"github.com/mohammedhamoda/neurorhythm/internal/tempo"
)

// ForGame builds the configuration of one of the mini-games. A known role
// turns piano into the role aware variant: a segmented pattern per role and
// a loop driven tempo instead of the time tiers.
func ForGame(id game.ID, role game.Role, def *sequence.Definition) Config {
	var d sequence.Definition
	if def != nil {
		d = *def
	} else {
		d = sequence.ForGame(id, role)
	}

	switch id {
	case game.Drums:
		return Config{
			Sequence:     sequence.New(d),
			Tempo:        tempo.New(tempo.DrumsConfig, tempo.TimeTiered),
			HitWindow:    1200 * time.Millisecond,
			BaseInterval: 1.0,
			LeadIn:       1.5,
		}
	case game.Guitar:
		return Config{
			Sequence:     sequence.New(d),
			Tempo:        tempo.New(tempo.PianoConfig, tempo.TimeTiered),
			HitWindow:    1000 * time.Millisecond,
			BaseInterval: 1.0,
			LeadIn:       1.0,
		}
	}

	if _, ok := game.ParseRole(string(role)); ok {
		return Config{
			Sequence:     sequence.New(d),
			Tempo:        tempo.New(tempo.PianoConfig, tempo.Clinical(role)),
			HitWindow:    1500 * time.Millisecond,
			Strict:       true,
			BaseInterval: 1.0,
			LeadIn:       1.0,
		}
	}
	return Config{
		Sequence:     sequence.New(d),
		Tempo:        tempo.New(tempo.PianoConfig, tempo.TimeTiered),
		HitWindow:    800 * time.Millisecond,
		BaseInterval: 1.0,
		LeadIn:       1.0,
	}
}
