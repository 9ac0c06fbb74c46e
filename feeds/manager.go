// Package feeds implements the fetch feeds use case: a manager bound to one
// data source, a worker carrying the cross-cutting concerns, an interactor
// orchestrating one request cycle and a presenter shaping the result for
// display.
package feeds

import (
	"context"

	"feedview/datasource"
	"feedview/models"
)

// Manager binds the use case to exactly one data source. It forwards the
// request and relays the result unchanged, so the active source variant can
// change without touching the worker or interactor.
type Manager struct {
	source datasource.Source
}

func NewManager(source datasource.Source) *Manager {
	return &Manager{source: source}
}

func (m *Manager) FetchFeeds(ctx context.Context, user models.User) ([]models.Feed, error) {
	return m.source.Fetch(ctx, user)
}
