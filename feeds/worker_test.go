package feeds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedview/feeds"
	"feedview/models"
)

func TestWorkerWithoutLanguagesIsPassThrough(t *testing.T) {
	expected := []models.Feed{
		{Title: "これは日本語のテキストです", Author: "A", PublishedOn: "2020-01-01"},
		{Title: "The quick brown fox jumps over the lazy dog", Author: "B", PublishedOn: "2020-01-02"},
	}
	source := &stubSource{feeds: expected}
	worker := feeds.NewWorker(feeds.NewManager(source), nil)

	got, err := worker.FetchFeeds(context.Background(), models.User{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestWorkerFiltersForeignLanguageTitles(t *testing.T) {
	source := &stubSource{feeds: []models.Feed{
		{Title: "これは日本語で書かれた長いテキストです", Author: "A", PublishedOn: "2020-01-01"},
		{Title: "The quick brown fox jumps over the lazy dog", Author: "B", PublishedOn: "2020-01-02"},
	}}
	worker := feeds.NewWorker(feeds.NewManager(source), []string{"en"})

	got, err := worker.FetchFeeds(context.Background(), models.User{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The quick brown fox jumps over the lazy dog", got[0].Title)
}
