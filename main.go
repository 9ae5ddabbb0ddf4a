package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mohammedhamoda/neurorhythm/internal/config"
	"github.com/mohammedhamoda/neurorhythm/internal/score"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cmd, err := config.Parse(args)
	if nil != err {
		return err
	}

	name := *config.UserName
	if name == "" {
		name = *config.UserID
	}
	p := &Program{User: score.User{ID: *config.UserID, Name: name, Email: *config.Email}}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	switch cmd {
	case config.HistoryCommand:
		return p.History(os.Stdout)
	case config.DashboardCommand:
		return p.Dashboard(os.Stdout)
	case config.RoleCommand:
		if err := p.SetRole(config.Role); nil != err {
			return err
		}
		fmt.Printf("%v is now %v\n", p.User.ID, config.Role)
		return nil
	}
	return p.Play(config.Game)
}
