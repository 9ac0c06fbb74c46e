package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"feedview/datasource"
	"feedview/feeds"
	"feedview/models"
)

type ServerConfig struct {

	// The data source variant bound at assembly time
	Source datasource.Source

	// Optional language filter applied at the worker seam
	Languages []string
}

// jsonDisplay captures the view model produced by one fetch cycle so the
// handler can render it once the cycle completes.
type jsonDisplay struct {
	viewModel models.FeedsViewModel
	errorMsg  *string
}

func (d *jsonDisplay) DisplayFeeds(viewModel models.FeedsViewModel) {
	d.viewModel = viewModel
}

func (d *jsonDisplay) DisplayFeedsFetchError(message string) {
	d.errorMsg = &message
}

// Returns a fiber.App instance to be used as the HTTP server for feedview
func Server(config *ServerConfig) *fiber.App {

	app := fiber.New()

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"latency": time.Since(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.ConfigDefault))
	app.Use(compress.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// One fetch-and-present cycle per request. Each request gets its own
	// assembly so nothing leaks between requests.
	app.Post("/feeds", func(c *fiber.Ctx) error {
		var request models.FeedsFetchRequest
		if err := c.BodyParser(&request); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}

		display := &jsonDisplay{}
		interactor := feeds.Configure(display, config.Source, config.Languages)
		interactor.FetchFeeds(c.UserContext(), request)

		if display.errorMsg != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.FeedsViewModel{Error: display.errorMsg})
		}

		return c.JSON(display.viewModel)
	})

	return app
}
