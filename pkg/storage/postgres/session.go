package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

var _ storage.Session = (*session)(nil)

type stagedOp struct {
	entity model.Entity
	remove bool
}

// session stages writes and applies them inside one database transaction
// on Commit or Flush.
type session struct {
	adapter *Adapter
	mu      sync.Mutex
	pending []stagedOp
}

func (s *session) Add(e model.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, stagedOp{entity: e})
}

func (s *session) Delete(e model.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, stagedOp{entity: e, remove: true})
}

func (s *session) Commit(ctx context.Context) error {
	return s.drain(ctx)
}

func (s *session) Flush(ctx context.Context) error {
	return s.drain(ctx)
}

func (s *session) Rollback(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}

// Execute translates the predicates into a WHERE clause and scans the
// matching rows into entities of the query's kind.
func (s *session) Execute(ctx context.Context, q storage.Query) (*storage.Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	proto := model.New(q.Kind)
	if proto == nil {
		return storage.NewResult(nil), nil
	}
	if s.adapter.db == nil {
		return nil, storage.ErrClosed
	}

	tx := s.adapter.db.WithContext(ctx).Order("id")
	for _, p := range q.Predicates {
		// A column the kind does not have can never match. Checking here
		// also keeps caller-supplied column names out of the SQL text.
		if _, ok := model.FieldValue(proto, p.Column); !ok {
			return storage.NewResult(nil), nil
		}
		op := "="
		if p.Op == storage.OpNe {
			op = "<>"
		}
		tx = tx.Where(fmt.Sprintf("%s %s ?", p.Column, op), p.Value)
	}

	structType := reflect.TypeOf(proto).Elem()
	slicePtr := reflect.New(reflect.SliceOf(structType))
	if err := tx.Find(slicePtr.Interface()).Error; err != nil {
		return nil, translateErr(q.Kind, err)
	}

	slice := slicePtr.Elem()
	entities := make([]model.Entity, 0, slice.Len())
	for i := 0; i < slice.Len(); i++ {
		entities = append(entities, slice.Index(i).Addr().Interface().(model.Entity))
	}
	return storage.NewResult(entities), nil
}

// Refresh re-reads the entity's row by primary key. A row that no longer
// exists leaves the entity untouched.
func (s *session) Refresh(ctx context.Context, e model.Entity) error {
	if e.GetID() == 0 {
		return nil
	}
	if s.adapter.db == nil {
		return storage.ErrClosed
	}
	err := s.adapter.db.WithContext(ctx).First(e, e.GetID()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return translateErr(e.Kind(), err)
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}

func (s *session) drain(ctx context.Context) error {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	if len(pending) == 0 {
		return nil
	}
	if s.adapter.db == nil {
		return storage.ErrClosed
	}

	err := s.apply(ctx, pending)
	if errors.Is(err, storage.ErrSchemaMissing) {
		// Create-if-missing, retried once.
		if merr := s.adapter.ensureSchema(); merr != nil {
			return merr
		}
		err = s.apply(ctx, pending)
	}
	return err
}

func (s *session) apply(ctx context.Context, pending []stagedOp) error {
	return s.adapter.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range pending {
			if op.remove {
				if op.entity.GetID() == 0 {
					continue
				}
				if err := tx.Delete(op.entity).Error; err != nil {
					return translateErr(op.entity.Kind(), err)
				}
				continue
			}
			if err := upsert(tx, op.entity); err != nil {
				return translateErr(op.entity.Kind(), err)
			}
		}
		return nil
	})
}

// upsert inserts new entities and updates existing ones, keyed purely on
// id presence. An update that matches no row falls back to an insert with
// the explicit id.
func upsert(tx *gorm.DB, e model.Entity) error {
	if e.GetID() == 0 {
		return tx.Create(e).Error
	}
	result := tx.Save(e)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return tx.Create(e).Error
	}
	return nil
}

// translateErr maps PostgreSQL error codes onto the shared error taxonomy.
func translateErr(kind model.Kind, err error) error {
	if err == nil {
		return nil
	}
	var perr *pq.Error
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case "23505": // unique_violation
		return &storage.IntegrityError{Kind: kind, Columns: constraintColumns(kind, perr.Constraint), Err: err}
	case "42P01": // undefined_table
		return fmt.Errorf("%w: %v", storage.ErrSchemaMissing, err)
	}
	return err
}

// constraintColumns matches a constraint name like "accounts_login_key" or
// "idx_api_name_version" back to the kind's logical unique key.
func constraintColumns(kind model.Kind, constraint string) []string {
	keys := model.UniqueKeys(kind)
	for _, keyset := range keys {
		all := true
		for _, column := range keyset {
			if !strings.Contains(constraint, column) {
				all = false
				break
			}
		}
		if all {
			return keyset
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return nil
}
