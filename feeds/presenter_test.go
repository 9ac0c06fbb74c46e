package feeds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedview/feeds"
	"feedview/models"
)

func TestPresentFeedsEmptyResponse(t *testing.T) {
	display := &spyDisplay{}
	presenter := feeds.NewPresenter(display)

	presenter.PresentFeeds(models.FeedsFetchResponse{Feeds: []models.Feed{}})

	require.Len(t, display.viewModels, 1)
	assert.Empty(t, display.errors)
	assert.NotNil(t, display.viewModels[0].Feeds)
	assert.Empty(t, display.viewModels[0].Feeds)
	assert.Nil(t, display.viewModels[0].Error)
}

func TestPresentFeedsKeepsValues(t *testing.T) {
	display := &spyDisplay{}
	presenter := feeds.NewPresenter(display)

	presenter.PresentFeeds(models.FeedsFetchResponse{Feeds: []models.Feed{
		{Title: "T", Author: "A", PublishedOn: "2020-01-01"},
	}})

	require.Len(t, display.viewModels, 1)
	assert.Equal(t, []models.Feed{{Title: "T", Author: "A", PublishedOn: "2020-01-01"}}, display.viewModels[0].Feeds)
}

func TestPresentFeedsTrimsWhitespace(t *testing.T) {
	display := &spyDisplay{}
	presenter := feeds.NewPresenter(display)

	presenter.PresentFeeds(models.FeedsFetchResponse{Feeds: []models.Feed{
		{Title: "  T ", Author: "A\n", PublishedOn: " 2020-01-01"},
	}})

	require.Len(t, display.viewModels, 1)
	assert.Equal(t, []models.Feed{{Title: "T", Author: "A", PublishedOn: "2020-01-01"}}, display.viewModels[0].Feeds)
}

func TestPresentFeedsErrorResponse(t *testing.T) {
	display := &spyDisplay{}
	presenter := feeds.NewPresenter(display)

	presenter.PresentFeeds(models.FeedsFetchResponse{Err: models.CannotFetch("upstream gone")})

	require.Len(t, display.errors, 1)
	assert.Equal(t, "upstream gone", display.errors[0])
	assert.Empty(t, display.viewModels)
}
