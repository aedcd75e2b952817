package storage

import (
	"context"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
)

// Session is the uniform operation set every tier adapter exposes. Mutations
// staged by Add and Delete are applied by Commit or Flush; Rollback discards
// them. The in-memory tier applies Add immediately (ids are assigned at
// Add time there) and its Rollback only logs a warning.
//
// A session scopes one logical unit of storage operations. On the primary
// tier each session maps to a pooled connection checkout; on the secondary
// and tertiary tiers sessions share the single adapter instance.
type Session interface {
	// Add stages an insert (zero id) or an update (existing id).
	Add(e model.Entity)

	// Delete stages removal of the entity by id. Absent ids are ignored
	// at apply time.
	Delete(e model.Entity)

	// Execute answers a declarative query. Results are ordered by
	// ascending id on every tier.
	Execute(ctx context.Context, q Query) (*Result, error)

	// Commit applies all staged mutations to the underlying resource.
	Commit(ctx context.Context) error

	// Rollback discards staged mutations.
	Rollback(ctx context.Context) error

	// Flush applies staged mutations without ending the logical unit.
	Flush(ctx context.Context) error

	// Refresh re-reads the entity's stored state by id.
	Refresh(ctx context.Context, e model.Entity) error

	// Close releases the session. Staged, uncommitted mutations are lost.
	Close() error
}
