package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"feedview/config"
	"feedview/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the feedview HTTP API",
		Description: `Starts the feedview HTTP server.

		Exposes a single fetch endpoint that runs one fetch-and-present
		cycle against the configured data source per request, plus health
		and Prometheus metrics endpoints.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "feedview.toml",
				Usage:   "Path to configuration file",
				EnvVars: []string{"FEEDVIEW_CONFIG"},
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   "Port to listen on",
				EnvVars: []string{"FEEDVIEW_PORT"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			source, closer, err := sourceFromConfig(cfg)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer()
			}

			app := server.Server(&server.ServerConfig{
				Source:    source,
				Languages: cfg.Filter.Languages,
			})

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			go func() {
				<-c
				log.Info("Gracefully shutting down...")
				app.ShutdownWithTimeout(60 * time.Second)
			}()

			log.WithFields(log.Fields{
				"port":   ctx.Int("port"),
				"source": cfg.Source.Kind,
			}).Info("Starting server")

			return app.Listen(fmt.Sprintf(":%d", ctx.Int("port")))
		},
	}
}
