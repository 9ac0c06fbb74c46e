// Package datasource provides the interchangeable data access variants for
// the fetch feeds use case. Exactly one variant is bound per assembly.
package datasource

import (
	"context"

	"feedview/models"
)

// Source produces the feeds visible to a user. Implementations deliver the
// whole collection in a single call and never stream partial results.
type Source interface {
	Fetch(ctx context.Context, user models.User) ([]models.Feed, error)
}
