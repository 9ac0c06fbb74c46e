package feeds

import (
	"feedview/datasource"
)

// Configure wires one fetch feeds assembly: the presenter is bound to the
// given display, the interactor to the presenter, and the worker and manager
// to the given source. Each call builds an independent object graph; nothing
// is shared between assemblies.
func Configure(display FeedsDisplay, source datasource.Source, languages []string) *Interactor {
	manager := NewManager(source)
	worker := NewWorker(manager, languages)
	presenter := NewPresenter(display)

	return NewInteractor(worker, presenter)
}
