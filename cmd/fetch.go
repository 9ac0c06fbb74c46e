package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cqroot/prompt"
	"github.com/cqroot/prompt/input"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"feedview/config"
	"feedview/feeds"
	"feedview/models"
)

// stdoutDisplay prints each entry of the view model as a JSON object on a
// single line. Errors are kept for the command to return.
type stdoutDisplay struct {
	err error
}

func (d *stdoutDisplay) DisplayFeeds(viewModel models.FeedsViewModel) {
	for _, feed := range viewModel.Feeds {
		feedJson, err := json.Marshal(feed)
		if err == nil {
			fmt.Println(string(feedJson))
		}
	}
}

func (d *stdoutDisplay) DisplayFeedsFetchError(message string) {
	d.err = errors.New(message)
}

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch feeds once and print them to the command line",
		Description: `Runs one fetch-and-present cycle against the configured
		data source and prints each entry as a JSON object on a single line.
		Use a tool like jq to process the output.

		Credentials are taken from the flags; missing ones are prompted for.
		Prints all other log messages to stderr.`,
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
				Usage:   "Email or handle identifying the user",
				EnvVars: []string{"FEEDVIEW_EMAIL"},
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Password for source variants that need one",
				EnvVars: []string{"FEEDVIEW_PASSWORD"},
			},
		},
		Action: func(ctx *cli.Context) error {
			// Keep stdout clean for the JSON output
			log.SetOutput(os.Stderr)

			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			email := ctx.String("email")
			if email == "" {
				email, err = prompt.New().Ask("Email:").Input("user@example.com")
				if err != nil {
					return err
				}
			}

			password := ctx.String("password")
			if password == "" {
				password, err = prompt.New().Ask("Password:").Input("", input.WithEchoMode(input.EchoNone))
				if err != nil {
					return err
				}
			}

			source, closer, err := sourceFromConfig(cfg)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer()
			}

			display := &stdoutDisplay{}
			interactor := feeds.Configure(display, source, cfg.Filter.Languages)
			interactor.FetchFeeds(ctx.Context, models.FeedsFetchRequest{
				Email:    &email,
				Password: &password,
			})

			return display.err
		},
	}
}
