package db

import (
	"context"
	"database/sql"
	"time"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
	log "github.com/sirupsen/logrus"

	"feedview/models"
)

// Writer populates the local cache from the sync command.
type Writer struct {
	db *sql.DB
}

func NewWriter(database string) (*Writer, error) {
	db, err := connection(database)
	if err != nil {
		return nil, err
	}
	return &Writer{db: db}, nil
}

// SaveFeeds upserts the fetched entries for the given owner and returns the
// number of rows written. Entries already present are left untouched.
func (writer *Writer) SaveFeeds(ctx context.Context, ownerEmail string, feeds []models.Feed) (int, error) {
	saved := 0
	fetchedAt := time.Now().Unix()

	for _, feed := range feeds {
		insert := sqlbuilder.SQLite.NewInsertBuilder()
		insert.InsertIgnoreInto("feeds").
			Cols("owner_email", "title", "author", "published_on", "fetched_at").
			Values(ownerEmail, feed.Title, feed.Author, feed.PublishedOn, fetchedAt)

		query, args := insert.Build()
		res, err := writer.db.ExecContext(ctx, query, args...)
		if err != nil {
			log.WithFields(log.Fields{
				"title": feed.Title,
				"error": err,
			}).Error("Error caching feed entry")
			return saved, err
		}

		if count, err := res.RowsAffected(); err == nil {
			saved += int(count)
		}
	}

	log.WithFields(log.Fields{
		"owner": ownerEmail,
		"total": len(feeds),
		"saved": saved,
	}).Info("Cached feed entries")

	return saved, nil
}

func (writer *Writer) Close() error {
	return writer.db.Close()
}
