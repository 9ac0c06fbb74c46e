package datasource

import (
	"context"

	"feedview/db"
	"feedview/models"
)

// CacheSource serves feeds previously synced into the local SQLite cache.
// Rows are scoped to the requesting user's email.
type CacheSource struct {
	reader *db.Reader
	limit  int
}

func NewCacheSource(reader *db.Reader, limit int) *CacheSource {
	if limit <= 0 {
		limit = 100
	}
	return &CacheSource{reader: reader, limit: limit}
}

func (s *CacheSource) Fetch(ctx context.Context, user models.User) ([]models.Feed, error) {
	return s.reader.GetFeeds(ctx, user.Email, s.limit)
}
