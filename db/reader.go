package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sqlbuilder "github.com/huandu/go-sqlbuilder"

	"feedview/models"
)

// Reader serves cached feed entries to the cache data source.
type Reader struct {
	db *sql.DB
}

func NewReader(database string) (*Reader, error) {
	// Open in read-only mode with optimized settings
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?mode=ro&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", database))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings for reader
	db.SetMaxOpenConns(4)            // Allow multiple concurrent readers
	db.SetMaxIdleConns(2)            // Keep some connections ready
	db.SetConnMaxLifetime(time.Hour) // Recreate connections after an hour
	db.SetConnMaxIdleTime(time.Hour) // Close idle connections after an hour

	if _, err := db.Exec(`
		PRAGMA busy_timeout = 5000;
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -32000; -- 32MB cache
		PRAGMA temp_store = MEMORY;
	`); err != nil {
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	return &Reader{
		db: db,
	}, nil
}

// GetFeeds returns the most recently cached entries for the given owner,
// newest first.
func (reader *Reader) GetFeeds(ctx context.Context, ownerEmail string, limit int) ([]models.Feed, error) {
	sb := sqlbuilder.SQLite.NewSelectBuilder()
	sb.Select("title", "author", "published_on").From("feeds")
	sb.Where(sb.Equal("owner_email", ownerEmail))
	sb.OrderBy("id").Desc()
	sb.Limit(limit)

	query, args := sb.Build()

	rows, err := reader.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	feeds := []models.Feed{}
	for rows.Next() {
		var feed models.Feed
		if err := rows.Scan(&feed.Title, &feed.Author, &feed.PublishedOn); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		feeds = append(feeds, feed)
	}

	return feeds, rows.Err()
}

func (reader *Reader) Close() error {
	return reader.db.Close()
}
