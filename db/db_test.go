package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedview/db"
	"feedview/models"
)

func TestCacheRoundtrip(t *testing.T) {
	database := filepath.Join(t.TempDir(), "feeds.db")

	require.NoError(t, db.Migrate(database))

	writer, err := db.NewWriter(database)
	require.NoError(t, err)
	defer writer.Close()

	entries := []models.Feed{
		{Title: "T", Author: "A", PublishedOn: "2020-01-01"},
		{Title: "U", Author: "B", PublishedOn: "2020-01-02"},
	}

	saved, err := writer.SaveFeeds(context.Background(), "a@b.com", entries)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	// Saving the same entries again must not duplicate them
	saved, err = writer.SaveFeeds(context.Background(), "a@b.com", entries)
	require.NoError(t, err)
	assert.Equal(t, 0, saved)

	reader, err := db.NewReader(database)
	require.NoError(t, err)
	defer reader.Close()

	feeds, err := reader.GetFeeds(context.Background(), "a@b.com", 10)
	require.NoError(t, err)
	assert.Equal(t, []models.Feed{
		{Title: "U", Author: "B", PublishedOn: "2020-01-02"},
		{Title: "T", Author: "A", PublishedOn: "2020-01-01"},
	}, feeds, "newest entries come first")

	// Entries are scoped to their owner
	feeds, err = reader.GetFeeds(context.Background(), "other@b.com", 10)
	require.NoError(t, err)
	assert.Empty(t, feeds)

	// Limit caps the result
	feeds, err = reader.GetFeeds(context.Background(), "a@b.com", 1)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, "U", feeds[0].Title)
}

func TestTidyRemovesOldEntries(t *testing.T) {
	database := filepath.Join(t.TempDir(), "feeds.db")

	require.NoError(t, db.Migrate(database))

	writer, err := db.NewWriter(database)
	require.NoError(t, err)

	_, err = writer.SaveFeeds(context.Background(), "a@b.com", []models.Feed{
		{Title: "T", Author: "A", PublishedOn: "2020-01-01"},
	})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	// A zero-day retention window removes everything fetched so far
	removed, err := db.Tidy(database, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	removed, err = db.Tidy(database, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRollbackDropsSchema(t *testing.T) {
	database := filepath.Join(t.TempDir(), "feeds.db")

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Rollback(database))

	// With the schema gone the writer has nothing to insert into
	writer, err := db.NewWriter(database)
	require.NoError(t, err)
	defer writer.Close()

	_, err = writer.SaveFeeds(context.Background(), "a@b.com", []models.Feed{
		{Title: "T", Author: "A", PublishedOn: "2020-01-01"},
	})
	assert.Error(t, err)
}
