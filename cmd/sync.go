package cmd

import (
	"fmt"
	"time"

	"github.com/cqroot/prompt"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"feedview/config"
	"feedview/datasource"
	"feedview/db"
	"feedview/models"
)

func syncCmd() *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Pull remote feeds into the local cache",
		Description: `Fetches the configured RSS/Atom feeds and stores the
		entries in the local SQLite cache, scoped to the given owner.

		Run the migrate command first to create the cache schema. The cache
		source variant then serves these entries without network access.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "feedview.toml",
				Usage:   "Path to configuration file",
				EnvVars: []string{"FEEDVIEW_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "Email identifying the owner of the cached entries",
				EnvVars: []string{"FEEDVIEW_EMAIL"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			email := ctx.String("email")
			if email == "" {
				email, err = prompt.New().Ask("Owner email:").Input("user@example.com")
				if err != nil {
					return err
				}
			}

			source := datasource.NewRemoteSource(cfg.Remote.URLs, time.Duration(cfg.Remote.TimeoutSeconds)*time.Second)
			fetched, err := source.Fetch(ctx.Context, models.User{Email: email})
			if err != nil {
				return fmt.Errorf("failed to fetch remote feeds: %w", err)
			}

			writer, err := db.NewWriter(cfg.Cache.Database)
			if err != nil {
				return err
			}
			defer writer.Close()

			saved, err := writer.SaveFeeds(ctx.Context, email, fetched)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"fetched": len(fetched),
				"saved":   saved,
			}).Info("Synced feeds into cache")

			return nil
		},
	}
}
