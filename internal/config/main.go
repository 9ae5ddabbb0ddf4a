package config

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/mohammedhamoda/neurorhythm/internal/engine"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	PlayCommand      = "play"
	HistoryCommand   = "history"
	DashboardCommand = "dashboard"
	RoleCommand      = "role"
)

var (
	app = kingpin.New("neurorhythm", "Rhythm training for drums, piano and guitar")

	Database    = app.Flag("db", "Session store").Default("neurorhythm.db").String()
	UserID      = app.Flag("user", "User id").Default("local").Short('u').String()
	UserName    = app.Flag("name", "Display name").Default("").String()
	Email       = app.Flag("email", "Contact email").Default("").String()
	FramePeriod = app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()

	play       = app.Command(PlayCommand, "Play a session").Default()
	gameArg    = play.Arg("game", "drums, piano or guitar").Default("piano").Enum("drums", "piano", "guitar")
	roleFlag   = play.Flag("role", "Play as a role instead of the stored one").Default("").String()
	minutes    = play.Flag("duration", "Session length in minutes").Default("10").Short('m').Enum("5", "10", "15")
	Sounds     = play.Flag("sounds", "Directory of note sounds").Default("sounds").String()
	Background = play.Flag("background", "Looped background track").Default("").String()
	Volume     = play.Flag("volume", "Background volume in halvings").Default("-2").Float64()
	Pattern    = play.Flag("pattern", "Pattern file replacing the built in one").Default("").String()
	Delay      = play.Flag("delay", "Lead in before the first beat, 0 keeps the game's").Default("0s").Short('d').Duration()
	late       = play.Flag("late", "Stalled ticks: skip or burst").Default("skip").Enum("skip", "burst")
	keysDrums  = play.Flag("keys-drums", "Keys for x and s").Default("fj").String()
	keysPiano  = play.Flag("keys-piano", "Keys for C4 G4 A4 F4").Default("asdf").String()
	keysGuitar = play.Flag("keys-guitar", "Keys for E2 A2 D3 G3").Default("hjkl").String()

	_ = app.Command(HistoryCommand, "List past sessions")
	_ = app.Command(DashboardCommand, "Summarize every user by role")

	role    = app.Command(RoleCommand, "Set the role of the user")
	roleArg = role.Arg("role", "Schizophrenia, Autism, Depression, ADHD or Anxiety").Required().String()

	Game     game.ID
	Role     game.Role
	Duration time.Duration
	Late     engine.Policy
)

func init() {
	app.Version("0.1.0")
}

func Keys(id game.ID) []rune {
	switch id {
	case game.Drums:
		return []rune(*keysDrums)
	case game.Guitar:
		return []rune(*keysGuitar)
	}
	return []rune(*keysPiano)
}

// Parse reads the command line and returns the selected command
func Parse(args []string) (string, error) {
	cmd, err := app.Parse(args)
	if nil != err {
		return "", err
	}

	Game, _ = game.ParseID(*gameArg)
	m, err := strconv.Atoi(*minutes)
	if nil != err {
		return "", fmt.Errorf("invalid duration: %w", err)
	}
	Duration = time.Duration(m) * time.Minute
	if Late, err = engine.ParsePolicy(*late); nil != err {
		return "", err
	}
	if *Delay < 0 {
		return "", fmt.Errorf("delay must not be negative")
	}

	Role = ""
	switch cmd {
	case PlayCommand:
		if *roleFlag != "" {
			r, ok := game.ParseRole(*roleFlag)
			if !ok {
				return "", fmt.Errorf("unknown role %q", *roleFlag)
			}
			Role = r
		}
		keys := Keys(Game)
		if n := len(keys); n != len(game.Pads[Game]) {
			return "", fmt.Errorf("%s needs %d keys, got %d", Game, len(game.Pads[Game]), n)
		}
		seen := map[rune]bool{}
		for _, r := range keys {
			r = unicode.ToLower(r)
			if seen[r] {
				return "", fmt.Errorf("key %q is bound to more than one %s pad", r, Game)
			}
			seen[r] = true
		}
	case RoleCommand:
		r, ok := game.ParseRole(*roleArg)
		if !ok {
			return "", fmt.Errorf("unknown role %q", *roleArg)
		}
		Role = r
	}
	return cmd, nil
}
