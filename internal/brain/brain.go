// Package brain maps session accuracy to a descriptive timing state.
package brain

import (
	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

type State struct {
	Limit          int // highest accuracy, inclusive, that maps to this state
	Name           string
	Features       []string
	Interpretation string
}

// Footer is shown under every analysis
const Footer = "Rhythmic accuracy was mapped to functional brain timing states linked to symptom expression"

// Lookup returns the first state whose limit is at or above the accuracy,
// falling back to the last one. Unknown or empty roles use the default table.
func Lookup(role game.Role, accuracy int) State {
	zones := Zones(role)
	for _, z := range zones {
		if accuracy <= z.Limit {
			return z
		}
	}
	return zones[len(zones)-1]
}

func Zones(role game.Role) []State {
	if z, ok := zones[role]; ok {
		return z
	}
	return defaultZones
}

// Note is the general remark for a role, empty when there is none
func Note(role game.Role) string {
	return notes[role]
}
