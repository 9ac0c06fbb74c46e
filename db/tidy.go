package db

import (
	"time"

	sb "github.com/huandu/go-sqlbuilder"
	log "github.com/sirupsen/logrus"
)

// Tidy removes cached feed entries older than retentionDays from the database
func Tidy(database string, retentionDays int) (int64, error) {
	db, err := connection(database)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour).Unix()
	deleteFeeds := sb.SQLite.NewDeleteBuilder()
	query, args := deleteFeeds.DeleteFrom("feeds").Where(deleteFeeds.LessEqualThan("fetched_at", cutoff)).Build()

	log.WithFields(log.Fields{
		"sql":  query,
		"args": args,
	}).Info("Tidying database")

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return removed, nil
}
