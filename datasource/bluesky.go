package datasource

import (
	"context"
	"fmt"

	appbsky "github.com/bluesky-social/indigo/api/bsky"

	"feedview/bluesky"
	"feedview/models"
)

// BlueskySource fetches the user's home timeline from a Bluesky PDS.
// A session is created per fetch with the credentials carried by the user.
type BlueskySource struct {
	host  string
	limit int64
}

func NewBlueskySource(host string, limit int64) *BlueskySource {
	if host == "" {
		host = bluesky.DefaultPDSHost
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return &BlueskySource{host: host, limit: limit}
}

func (s *BlueskySource) Fetch(ctx context.Context, user models.User) ([]models.Feed, error) {
	client, err := bluesky.ClientFromCredentials(ctx, s.host, &bluesky.Credentials{
		Identifier: user.Email,
		Password:   user.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create client with provided credentials: %w", err)
	}

	timeline, err := client.Timeline(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	feeds := []models.Feed{}
	for _, entry := range timeline.Feed {
		if entry.Post == nil {
			continue
		}
		feeds = append(feeds, models.Feed{
			Title:       postText(entry.Post),
			Author:      postAuthor(entry.Post),
			PublishedOn: entry.Post.IndexedAt,
		})
	}

	return feeds, nil
}

func postText(post *appbsky.FeedDefs_PostView) string {
	if post.Record == nil {
		return ""
	}
	if record, ok := post.Record.Val.(*appbsky.FeedPost); ok {
		return record.Text
	}
	return ""
}

func postAuthor(post *appbsky.FeedDefs_PostView) string {
	if post.Author == nil {
		return ""
	}
	if post.Author.DisplayName != nil && *post.Author.DisplayName != "" {
		return *post.Author.DisplayName
	}
	return post.Author.Handle
}
