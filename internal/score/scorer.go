package score

import (
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	Save(report *Report) error

	// Load a user's sessions, newest first
	Load(userID string) ([]Session, error)

	Role(userID string) (game.Role, error)
	SetRole(user User) error

	// Summaries groups every user by role for the dashboard
	Summaries() (map[game.Role][]UserSummary, error)
}

// Report is what a session hands to the store once it ends
type Report struct {
	UserID           string
	UserName         string
	Game             game.ID
	Hits             int
	Misses           int
	Accuracy         int
	IntendedMinutes  float64
	TimeSpentSeconds int
}

func NewReport(user User, id game.ID, stats Stats, intended, spent time.Duration) *Report {
	return &Report{
		UserID:           user.ID,
		UserName:         user.Name,
		Game:             id,
		Hits:             stats.Hits,
		Misses:           stats.Misses,
		Accuracy:         stats.Accuracy(),
		IntendedMinutes:  intended.Minutes(),
		TimeSpentSeconds: int(spent.Seconds()),
	}
}

// Session is a stored Report
type Session struct {
	ID int64
	Report
	Timestamp time.Time
}

type User struct {
	ID    string
	Name  string
	Email string
	Role  game.Role
}

type UserSummary struct {
	User
	TotalGames      int
	AverageAccuracy int
	LastPlayed      time.Time
	Sessions        []Session
}
