package score

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	Path string
	db   *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists users
	  (
		  id text not null primary key,
		  display_name text,
		  email text,
		  role text
	  );
	create table if not exists sessions
	  (
		  id integer not null primary key,
		  user_id text not null,
		  user_name text,
		  game text,
		  hits integer,
		  misses integer,
		  accuracy integer,
		  intended_minutes real,
		  time_spent_seconds integer,
		  timestamp integer not null default (strftime('%s', 'now'))
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create tables: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) Save(r *Report) error {
	if nil == s.db {
		return errors.New("store is not open")
	}
	_, err := s.db.Exec(`insert into sessions
		(user_id, user_name, game, hits, misses, accuracy, intended_minutes, time_spent_seconds)
		values(?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UserID, r.UserName, string(r.Game), r.Hits, r.Misses, r.Accuracy, r.IntendedMinutes, r.TimeSpentSeconds,
	)
	if nil != err {
		return fmt.Errorf("unable to save session: %w", err)
	}
	return nil
}

const sessionColumns = `id, user_id, user_name, game, hits, misses, accuracy, intended_minutes, time_spent_seconds, timestamp`

func scanSessions(rows *sql.Rows) ([]Session, error) {
	defer rows.Close()
	sessions := []Session{}
	for rows.Next() {
		var se Session
		var id string
		var ts int64
		if err := rows.Scan(&se.ID, &se.UserID, &se.UserName, &id, &se.Hits, &se.Misses,
			&se.Accuracy, &se.IntendedMinutes, &se.TimeSpentSeconds, &ts); nil != err {
			return nil, fmt.Errorf("unable to read session: %w", err)
		}
		se.Game = game.ID(id)
		se.Timestamp = time.Unix(ts, 0)
		sessions = append(sessions, se)
	}
	return sessions, rows.Err()
}

func (s *DefaultScorer) Load(userID string) ([]Session, error) {
	rows, err := s.db.Query(
		"select "+sessionColumns+" from sessions where user_id = ? order by timestamp desc, id desc",
		userID,
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load sessions: %w", err)
	}
	return scanSessions(rows)
}

// Role is empty for users that never picked one
func (s *DefaultScorer) Role(userID string) (game.Role, error) {
	var role sql.NullString
	err := s.db.QueryRow("select role from users where id = ?", userID).Scan(&role)
	if sql.ErrNoRows == err {
		return "", nil
	}
	if nil != err {
		return "", fmt.Errorf("unable to load role: %w", err)
	}
	return game.Role(role.String), nil
}

func (s *DefaultScorer) SetRole(u User) error {
	_, err := s.db.Exec(`insert into users(id, display_name, email, role) values(?, ?, ?, ?)
		on conflict(id) do update set
			display_name = coalesce(nullif(excluded.display_name, ''), users.display_name),
			email = coalesce(nullif(excluded.email, ''), users.email),
			role = excluded.role`,
		u.ID, u.Name, u.Email, string(u.Role),
	)
	if nil != err {
		return fmt.Errorf("unable to save role: %w", err)
	}
	return nil
}

func (s *DefaultScorer) users() ([]User, error) {
	rows, err := s.db.Query("select id, display_name, email, role from users")
	if nil != err {
		return nil, fmt.Errorf("unable to load users: %w", err)
	}
	defer rows.Close()
	users := []User{}
	for rows.Next() {
		var u User
		var name, email, role sql.NullString
		if err := rows.Scan(&u.ID, &name, &email, &role); nil != err {
			return nil, fmt.Errorf("unable to read user: %w", err)
		}
		u.Name, u.Email, u.Role = name.String, email.String, game.Role(role.String)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *DefaultScorer) Summaries() (map[game.Role][]UserSummary, error) {
	users, err := s.users()
	if nil != err {
		return nil, err
	}
	rows, err := s.db.Query("select " + sessionColumns + " from sessions order by timestamp desc, id desc")
	if nil != err {
		return nil, fmt.Errorf("unable to load sessions: %w", err)
	}
	sessions, err := scanSessions(rows)
	if nil != err {
		return nil, err
	}
	return Group(users, sessions), nil
}

// Group builds per user summaries and buckets them by role. Sessions are
// expected newest first. Sessions of unknown users get an anonymous,
// uncategorized summary.
func Group(users []User, sessions []Session) map[game.Role][]UserSummary {
	summaries := map[string]*UserSummary{}
	order := []string{}
	add := func(u User) *UserSummary {
		if u.Role == "" {
			u.Role = game.Uncategorized
		}
		if u.Name == "" {
			u.Name = u.Email
		}
		if u.Name == "" {
			u.Name = "Unknown"
		}
		us := &UserSummary{User: u}
		summaries[u.ID] = us
		order = append(order, u.ID)
		return us
	}
	for _, u := range users {
		add(u)
	}

	for _, se := range sessions {
		us, ok := summaries[se.UserID]
		if !ok {
			name := se.UserName
			if name == "" {
				name = "Anonymous"
			}
			us = add(User{ID: se.UserID, Name: name, Email: "N/A"})
		}
		us.Sessions = append(us.Sessions, se)
		us.TotalGames++
		if us.LastPlayed.IsZero() {
			us.LastPlayed = se.Timestamp
		}
	}

	groups := map[game.Role][]UserSummary{}
	for _, id := range order {
		us := summaries[id]
		if us.TotalGames > 0 {
			total := 0
			for _, se := range us.Sessions {
				total += se.Accuracy
			}
			us.AverageAccuracy = int(math.Round(float64(total) / float64(us.TotalGames)))
		}
		sort.SliceStable(us.Sessions, func(i, j int) bool {
			return us.Sessions[i].Timestamp.After(us.Sessions[j].Timestamp)
		})
		groups[us.Role] = append(groups[us.Role], *us)
	}
	return groups
}
