package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "famquest"
	app.Usage = "family activity tracking service"
	app.Action = cli.ShowAppHelp
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Description: `Serves activity logging, stats snapshots and history.`,
		},
		{
			Action:      s.migrate,
			Name:        "migrate",
			Usage:       "Migrate the database schema",
			Description: `Creates or updates the member, stat, activity and streak tables.`,
		},
	}

	s.app = app
}
