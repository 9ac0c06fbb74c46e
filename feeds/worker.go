package feeds

import (
	"context"
	"time"

	lingua "github.com/pemistahl/lingua-go"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"feedview/models"
)

// Worker fronts the manager for the interactor. Concerns that should not
// leak into the use case orchestration live here: request logging, fetch
// metrics and the optional language filter.
type Worker struct {
	manager         *Manager
	targetLanguages []lingua.Language
	detector        lingua.LanguageDetector
}

// NewWorker builds a worker around the given manager. When languages is
// empty the worker is a pure pass-through and no detector is constructed.
func NewWorker(manager *Manager, languages []string) *Worker {
	worker := &Worker{manager: manager}

	if len(languages) > 0 {
		worker.targetLanguages = targetLanguagesToLingua(languages)
		worker.detector = newLanguageDetector()
	}

	return worker
}

func (w *Worker) FetchFeeds(ctx context.Context, user models.User) ([]models.Feed, error) {
	fetchAttempts.Inc()
	start := time.Now()

	fetched, err := w.manager.FetchFeeds(ctx, user)
	fetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		fetchErrors.Inc()
		log.WithFields(log.Fields{
			"error": err,
		}).Error("Error fetching feeds")
		return nil, err
	}

	kept := w.filterLanguages(fetched)
	fetchedEntries.Add(float64(len(kept)))

	log.WithFields(log.Fields{
		"fetched": len(fetched),
		"kept":    len(kept),
		"latency": time.Since(start),
	}).Info("Fetched feeds")

	return kept, nil
}

// filterLanguages drops entries whose detected title language is outside the
// configured set. Entries the detector cannot classify are kept.
func (w *Worker) filterLanguages(feeds []models.Feed) []models.Feed {
	if w.detector == nil {
		return feeds
	}

	return lo.Filter(feeds, func(feed models.Feed, _ int) bool {
		lang, ok := w.detector.DetectLanguageOf(feed.Title)
		if !ok {
			return true
		}
		return lo.Contains(w.targetLanguages, lang)
	})
}
