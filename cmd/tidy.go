package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"feedview/db"
)

func tidyCmd() *cli.Command {
	return &cli.Command{
		Name:  "tidy",
		Usage: "Tidy up the cache database",
		Description: `Tidy up the cache database by removing entries that are old.

		Removes entries fetched more than the retention window ago.
		This is to keep the database size down and the cache fresh.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Value:   "feeds.db",
				Usage:   "SQLite database file location",
				EnvVars: []string{"FEEDVIEW_DATABASE"},
			},
			&cli.IntFlag{
				Name:    "retention-days",
				Value:   90,
				Usage:   "Number of days to keep cached entries",
				EnvVars: []string{"FEEDVIEW_RETENTION_DAYS"},
			},
		},
		Action: func(ctx *cli.Context) error {
			database := ctx.String("database")
			fmt.Println("Database configured: ", database)
			removed, err := db.Tidy(database, ctx.Int("retention-days"))
			if err != nil {
				return err
			}
			fmt.Println("Removed entries: ", removed)
			return nil
		},
	}
}
