package main

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/mohammedhamoda/neurorhythm/internal/audio"
	"github.com/mohammedhamoda/neurorhythm/internal/brain"
	"github.com/mohammedhamoda/neurorhythm/internal/clock"
	"github.com/mohammedhamoda/neurorhythm/internal/config"
	"github.com/mohammedhamoda/neurorhythm/internal/engine"
	"github.com/mohammedhamoda/neurorhythm/internal/game"
	"github.com/mohammedhamoda/neurorhythm/internal/input"
	"github.com/mohammedhamoda/neurorhythm/internal/parser"
	"github.com/mohammedhamoda/neurorhythm/internal/render"
	"github.com/mohammedhamoda/neurorhythm/internal/score"
	"github.com/mohammedhamoda/neurorhythm/internal/sequence"
	"github.com/mohammedhamoda/neurorhythm/internal/theme"
)

type Program struct {
	Parser   *parser.DefaultParser
	Scorer   score.Scorer
	Theme    *theme.DefaultTheme
	Renderer *render.DefaultRenderer
	Player   *audio.Player

	User score.User

	saves sync.WaitGroup
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	if nil == p.Parser {
		p.Parser = &parser.DefaultParser{}
	}
	if nil == p.Scorer {
		p.Scorer = &score.DefaultScorer{Path: *config.Database}
	}
	if nil == p.Theme {
		p.Theme = &theme.DefaultTheme{}
	}
	if nil == p.Renderer {
		p.Renderer = &render.DefaultRenderer{}
	}

	if err := p.Scorer.Init(); nil != err {
		return fmt.Errorf("unable to open session store: %w", err)
	}
	return nil
}

// Deinit waits for pending saves before closing the store
func (p *Program) Deinit() {
	p.saves.Wait()
	p.Scorer.Deinit()
}

// role picks the role given on the command line, else the stored one
func (p *Program) role() game.Role {
	if config.Role != "" {
		return config.Role
	}
	role, err := p.Scorer.Role(p.User.ID)
	if nil != err {
		log.Println("playing without a role:", err)
		return ""
	}
	return role
}

// save hands a report to the store without blocking the caller
func (p *Program) save(r *score.Report) {
	p.saves.Add(1)
	go func() {
		defer p.saves.Done()
		if err := p.Scorer.Save(r); nil != err {
			log.Println("session not saved:", err)
		}
	}()
}

func (p *Program) definition() (*sequence.Definition, error) {
	if *config.Pattern == "" {
		return nil, nil
	}
	return p.Parser.Parse(*config.Pattern)
}

// sound opens the audio device. Without one the session runs silently on
// the wall clock.
func (p *Program) sound(id game.ID) (clock.Clock, engine.Audio) {
	player := &audio.Player{Dir: *config.Sounds}
	if err := player.Init(); nil != err {
		log.Println(err, "playing silently")
		wall := clock.NewWall()
		wall.Start()
		return wall, nil
	}
	p.Player = player
	if n := player.Load(game.Pads[id]); n == 0 {
		log.Println("no sounds found in", player.Dir)
	}
	if *config.Background != "" {
		if err := player.Background(*config.Background, *config.Volume); nil != err {
			log.Println("no background track:", err)
		}
	}
	return player, player
}

func (p *Program) Play(id game.ID) error {
	role := p.role()
	def, err := p.definition()
	if nil != err {
		return err
	}
	cfg := engine.ForGame(id, role, def)
	cfg.Policy = config.Late
	if *config.Delay > 0 {
		cfg.LeadIn = config.Delay.Seconds()
	}

	clk, sink := p.sound(id)
	if nil != p.Player {
		defer p.Player.Deinit()
	}

	keys := config.Keys(id)
	kb := &input.Keyboard{Keymap: input.NewKeymap(keys, game.Pads[id])}
	if err := kb.Open(); nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer kb.Close()

	title := string(id)
	if role != "" {
		title = fmt.Sprintf("%s (%s)", id, role)
	}
	hud := &render.HUD{
		R:     p.Renderer,
		Theme: p.Theme,
		Title: title,
		Pads:  game.Pads[id],
		Keys:  keys,
	}

	var summary engine.Summary
	eng := engine.New(cfg, clk, sink)
	eng.OnJudge = func(j game.Judgement, _ score.Stats) {
		hud.Flash(j)
	}
	eng.OnEnd = func(s engine.Summary) {
		summary = s
		p.save(score.NewReport(p.User, id, s.Stats, s.Duration, s.Elapsed))
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	if err := eng.Start(config.Duration); nil != err {
		return err
	}
	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		for _, ev := range kb.Poll() {
			if ev.Quit {
				eng.Stop()
				break
			}
			eng.Press(ev.Symbol)
		}
		eng.Tick()
		if !eng.Running() {
			return false
		}
		hud.Draw(eng.State(), now)
		return true
	})

	hud.End(summary, role)
	kb.Wait()
	return nil
}

func (p *Program) History(w io.Writer) error {
	sessions, err := p.Scorer.Load(p.User.ID)
	if nil != err {
		return err
	}
	role, err := p.Scorer.Role(p.User.ID)
	if nil != err {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintf(w, "No sessions for %v yet\n", p.User.ID)
		return nil
	}
	fmt.Fprintf(w, "%-16v  %-6v  %4v  %6v  %4v  %7v  %v\n", "Played", "Game", "Hits", "Misses", "Acc", "Time", "Brain state")
	for _, se := range sessions {
		fmt.Fprintf(w, "%-16v  %-6v  %4v  %6v  %3v%%  %3v/%-3v  %v\n",
			se.Timestamp.Format("2006-01-02 15:04"),
			se.Game,
			se.Hits,
			se.Misses,
			se.Accuracy,
			fmt.Sprintf("%vm", se.TimeSpentSeconds/60),
			fmt.Sprintf("%vm", se.IntendedMinutes),
			brain.Lookup(role, se.Accuracy).Name,
		)
	}
	return nil
}

// dashboardOrder lists the known roles first, then anything else sorted
func dashboardOrder(groups map[game.Role][]score.UserSummary) []game.Role {
	order := []game.Role{}
	seen := map[game.Role]bool{}
	for _, r := range append(append([]game.Role{}, game.Roles...), game.Uncategorized) {
		if _, ok := groups[r]; ok {
			order = append(order, r)
			seen[r] = true
		}
	}
	rest := []game.Role{}
	for r := range groups {
		if !seen[r] {
			rest = append(rest, r)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(order, rest...)
}

func (p *Program) Dashboard(w io.Writer) error {
	groups, err := p.Scorer.Summaries()
	if nil != err {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(w, "No users yet")
		return nil
	}
	for _, role := range dashboardOrder(groups) {
		fmt.Fprintf(w, "== %v ==\n", role)
		if note := brain.Note(role); note != "" {
			for _, l := range render.Wrap(note, 78) {
				fmt.Fprintln(w, l)
			}
		}
		for _, us := range groups[role] {
			last := "never"
			if !us.LastPlayed.IsZero() {
				last = us.LastPlayed.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "  %-20v  %3v games  %3v%%  %-16v  %v\n",
				us.Name, us.TotalGames, us.AverageAccuracy, last,
				brain.Lookup(role, us.AverageAccuracy).Name,
			)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (p *Program) SetRole(role game.Role) error {
	u := p.User
	u.Role = role
	return p.Scorer.SetRole(u)
}
