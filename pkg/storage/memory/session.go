package memory

import (
	"context"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

var _ storage.Session = (*session)(nil)

// session is a thin handle onto the shared store. Unlike the relational
// tiers there is no staging: Add assigns ids and stores immediately, so
// Commit and Flush only report the first error a preceding Add produced.
type session struct {
	store *Store
	err   error
}

// Add applies the write immediately. A uniqueness conflict is remembered
// and surfaced by the next Commit or Flush, matching where the relational
// tiers report it.
func (s *session) Add(e model.Entity) {
	if err := s.store.apply(e); err != nil && s.err == nil {
		s.err = err
	}
}

// Delete removes the entity by id immediately. Absent ids are ignored.
func (s *session) Delete(e model.Entity) {
	s.store.remove(e)
}

// Execute answers the query by scanning the kind's map. An unknown kind
// yields an empty result.
func (s *session) Execute(ctx context.Context, q storage.Query) (*storage.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.store.scan(q)
	if err != nil {
		return nil, err
	}
	return storage.NewResult(rows), nil
}

// Commit reports any error from preceding Adds. The data itself was
// already applied.
func (s *session) Commit(ctx context.Context) error {
	return s.takeErr()
}

// Rollback cannot undo mutations already applied to live memory; it logs a
// warning and discards the remembered error.
func (s *session) Rollback(ctx context.Context) error {
	warnRollback()
	s.err = nil
	return nil
}

// Flush behaves like Commit.
func (s *session) Flush(ctx context.Context) error {
	return s.takeErr()
}

// Refresh is a no-op: entities are stored live, so the caller already sees
// the stored state.
func (s *session) Refresh(ctx context.Context, e model.Entity) error {
	return nil
}

func (s *session) Close() error {
	s.err = nil
	return nil
}

func (s *session) takeErr() error {
	err := s.err
	s.err = nil
	return err
}
