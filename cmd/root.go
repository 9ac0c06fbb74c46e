package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "feedview",
		Usage: "Fetch and present feeds for a user",
		Description: `Fetches the feeds visible to a user from one of three
		interchangeable data sources and presents them as view models.

		The active source is selected in the TOML configuration file:
		RSS/Atom feeds over HTTP, the user's Bluesky timeline, or the
		local SQLite cache populated by the sync command.

		Flags can generally be set via environment variables, e.g.:

		--config => FEEDVIEW_CONFIG=feedview.toml
		--port => FEEDVIEW_PORT=3000
		`,
		Commands: []*cli.Command{
			serveCmd(),
			fetchCmd(),
			syncCmd(),
			migrateCmd(),
			rollbackCmd(),
			tidyCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
