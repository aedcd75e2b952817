// Package memory implements the tertiary storage tier: a process-memory
// store that is always available, does no I/O, and loses its data when the
// process exits. It is the guaranteed backstop of the tier manager and
// cannot fail once constructed.
package memory

import (
	"log"
	"sync"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

// Store keeps one map per entity kind, keyed by id, plus a monotonic
// counter per kind. Counters start at 1 and are never reused within a
// process lifetime. All state is guarded by one mutex because callers may
// run truly parallel goroutines against the shared adapter.
type Store struct {
	mu       sync.Mutex
	records  map[model.Kind]map[int64]model.Entity
	counters map[model.Kind]int64
	closed   bool
}

// New constructs an empty store.
func New() *Store {
	return &Store{
		records:  make(map[model.Kind]map[int64]model.Entity),
		counters: make(map[model.Kind]int64),
	}
}

// Session returns a handle onto the shared store. The tertiary tier is not
// connection-pooled; every session operates on the same instance.
func (s *Store) Session() storage.Session {
	return &session{store: s}
}

// Initialized reports whether the store is usable. It is true from
// construction until Close.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close discards all stored data. The tier manager calls this on shutdown;
// there is nothing to persist.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[model.Kind]map[int64]model.Entity)
	s.counters = make(map[model.Kind]int64)
	s.closed = true
	return nil
}

// Stats returns the number of stored entities per kind.
func (s *Store) Stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := make(map[string]int, len(model.KindValues()))
	for _, kind := range model.KindValues() {
		stats[kind.String()] = len(s.records[kind])
	}
	return stats
}

// apply stores the entity, assigning an id when it has none. Uniqueness on
// the kind's logical keys is enforced here so a duplicate insert fails the
// same way it would on the relational tiers.
func (s *Store) apply(e model.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}

	if err := s.conflicts(e); err != nil {
		return err
	}

	kind := e.Kind()
	if s.records[kind] == nil {
		s.records[kind] = make(map[int64]model.Entity)
	}
	if e.GetID() == 0 {
		s.counters[kind]++
		e.SetID(s.counters[kind])
	} else if e.GetID() > s.counters[kind] {
		s.counters[kind] = e.GetID()
	}
	s.records[kind][e.GetID()] = e
	return nil
}

func (s *Store) remove(e model.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kindRecords, ok := s.records[e.Kind()]; ok {
		delete(kindRecords, e.GetID())
	}
}

func (s *Store) conflicts(e model.Entity) error {
	for _, keyset := range model.UniqueKeys(e.Kind()) {
		q := storage.Select(e.Kind())
		for _, column := range keyset {
			value, ok := model.FieldValue(e, column)
			if !ok {
				continue
			}
			q = q.Where(column, value)
		}
		for id, other := range s.records[e.Kind()] {
			if id == e.GetID() {
				continue
			}
			if match, err := q.Matches(other); err == nil && match {
				return &storage.IntegrityError{Kind: e.Kind(), Columns: keyset}
			}
		}
	}
	return nil
}

func (s *Store) scan(q storage.Query) ([]model.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []model.Entity
	for _, e := range s.records[q.Kind] {
		match, err := q.Matches(e)
		if err != nil {
			return nil, err
		}
		if match {
			rows = append(rows, e)
		}
	}
	return rows, nil
}

func warnRollback() {
	log.Printf("memory: rollback requested; in-memory mutations are applied immediately and cannot be undone")
}
