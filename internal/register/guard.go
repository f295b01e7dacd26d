package register

import (
	"sync/atomic"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/identity"
)

// Guard decouples instance-row creation from file-write success into a
// try-then-commit pattern. Construct one right after the instance row is
// inserted, defer Run, and call Dismiss once the file write succeeds — if
// Run ever executes without a prior Dismiss, it deletes the row
// asynchronously, cascading counters/aggregates through the catalog's own
// delete triggers.
//
// Grounded on original_source/src/db/register.rs's RegistryGuard, whose
// Drop impl spawns the same async delete-on-undismissed-guard behavior;
// this is an explicit Dismiss()/Run() contract instead of a finalizer,
// since Go has no Drop equivalent and an explicit call at the end of the
// pipeline's defer chain is the idiomatic substitute.
type Guard struct {
	catalog   *catalog.Catalog
	id        identity.RecordID
	dismissed atomic.Bool
}

// NewGuard returns a Guard that will roll back id's row on Run unless
// Dismiss is called first.
func NewGuard(c *catalog.Catalog, id identity.RecordID) *Guard {
	return &Guard{catalog: c, id: id}
}

// Dismiss marks the guard as no longer needing to roll back. Safe to call
// more than once.
func (g *Guard) Dismiss() {
	g.dismissed.Store(true)
}

// Run rolls back the guarded instance if it was never dismissed. Intended
// to be called via defer immediately after NewGuard.
func (g *Guard) Run() {
	if g.dismissed.Load() {
		return
	}
	go func() {
		_ = g.catalog.DeleteInstance(g.id)
	}()
}
