package game

type ID string

const (
	Drums  ID = "drums"
	Piano  ID = "piano"
	Guitar ID = "guitar"
)

var Games = []ID{Drums, Piano, Guitar}

// Pads lists the playable note identities of each game, in screen order
var Pads = map[ID][]Symbol{
	Drums:  {"x", "s"},
	Piano:  {"C4", "G4", "A4", "F4"},
	Guitar: {"E2", "A2", "D3", "G3"},
}

func ParseID(s string) (ID, bool) {
	for _, id := range Games {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}
