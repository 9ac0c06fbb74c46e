package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	log "github.com/sirupsen/logrus"

	"feedview/models"
)

// Cap on the response body size per feed URL
const maxFeedBody = 5 * 1024 * 1024

// RemoteSource fetches RSS and Atom feeds over HTTP from a fixed set of URLs.
type RemoteSource struct {
	urls   []string
	client *http.Client
}

func NewRemoteSource(urls []string, timeout time.Duration) *RemoteSource {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &RemoteSource{
		urls:   urls,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *RemoteSource) Fetch(ctx context.Context, user models.User) ([]models.Feed, error) {
	feeds := []models.Feed{}

	for _, url := range s.urls {
		parsed, err := s.fetchOne(ctx, url)
		if err != nil {
			return nil, err
		}

		for _, item := range parsed.Items {
			feeds = append(feeds, models.Feed{
				Title:       item.Title,
				Author:      itemAuthor(parsed, item),
				PublishedOn: itemPublished(item),
			})
		}

		log.WithFields(log.Fields{
			"url":   url,
			"items": len(parsed.Items),
		}).Info("Fetched remote feed")
	}

	return feeds, nil
}

func (s *RemoteSource) fetchOne(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "feedview/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	parsed, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}

	return parsed, nil
}

// itemAuthor falls back to the channel title when the item carries no author.
func itemAuthor(feed *gofeed.Feed, item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	return feed.Title
}

func itemPublished(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC().Format(time.RFC3339)
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC().Format(time.RFC3339)
	}
	return item.Published
}
