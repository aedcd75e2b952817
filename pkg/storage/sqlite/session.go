package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

var _ storage.Session = (*session)(nil)

type stagedOp struct {
	entity model.Entity
	remove bool
}

// session stages writes and drains them inside one transaction on Commit
// or Flush. The stage is guarded by its own mutex so concurrent pushes
// cannot corrupt a drain in progress.
type session struct {
	adapter *Adapter
	mu      sync.Mutex
	pending []stagedOp
}

// Add stages an insert or update; dispatch happens at drain time by the
// entity's Kind, never by its field shape.
func (s *session) Add(e model.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, stagedOp{entity: e})
}

// Delete stages removal by id.
func (s *session) Delete(e model.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, stagedOp{entity: e, remove: true})
}

// Commit drains the staged queue in order inside one transaction.
func (s *session) Commit(ctx context.Context) error {
	return s.drain(ctx)
}

// Flush behaves like Commit; SQLite has no long-lived transaction to keep
// open between the two.
func (s *session) Flush(ctx context.Context) error {
	return s.drain(ctx)
}

// Rollback discards staged, not-yet-applied operations.
func (s *session) Rollback(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}

// Execute compiles the predicates into a WHERE clause and decodes the
// matching rows. An unknown kind yields an empty result.
func (s *session) Execute(ctx context.Context, q storage.Query) (*storage.Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	table := model.Table(q.Kind)
	if table == "" {
		return storage.NewResult(nil), nil
	}
	db, err := s.adapter.handle()
	if err != nil {
		return nil, err
	}

	proto := model.New(q.Kind)
	cols := model.Columns(proto)
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), table)
	var args []interface{}
	var where []string
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
		value, err := encodeField(p.Value)
		if err != nil {
			return nil, err
		}
		where = append(where, fmt.Sprintf("%s %s ?", p.Column, op))
		args = append(args, value)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entities []model.Entity
	for rows.Next() {
		e := model.New(q.Kind)
		if err := scanRow(rows, e, cols); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return storage.NewResult(entities), nil
}

// Refresh re-reads the entity's row by id. By-value semantics: nested
// fields come back from their serialized form.
func (s *session) Refresh(ctx context.Context, e model.Entity) error {
	if e.GetID() == 0 {
		return nil
	}
	db, err := s.adapter.handle()
	if err != nil {
		return err
	}

	cols := model.Columns(e)
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", strings.Join(names, ", "), model.Table(e.Kind()))

	rows, err := db.QueryContext(ctx, query, e.GetID())
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return rows.Err()
	}
	return scanRow(rows, e, cols)
}

// Close discards any staged operations.
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

	db, err := s.adapter.handle()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, op := range pending {
		if op.remove {
			err = deleteEntity(ctx, tx, op.entity)
		} else {
			err = upsertEntity(ctx, tx, op.entity)
		}
		if err != nil {
			_ = tx.Rollback()
			return translateErr(op.entity.Kind(), err)
		}
	}
	return tx.Commit()
}

func deleteEntity(ctx context.Context, tx *sql.Tx, e model.Entity) error {
	if e.GetID() == 0 {
		return nil
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", model.Table(e.Kind()))
	_, err := tx.ExecContext(ctx, query, e.GetID())
	return err
}

// upsertEntity inserts when the entity has no id and updates otherwise.
// An update that matches no row falls back to an insert with the explicit
// id, so re-adding an entity after a restart behaves like an upsert.
func upsertEntity(ctx context.Context, tx *sql.Tx, e model.Entity) error {
	table := model.Table(e.Kind())
	var names []string
	var args []interface{}
	for _, col := range model.Columns(e) {
		if col.Name == "id" {
			continue
		}
		value, _ := model.FieldValue(e, col.Name)
		encoded, err := encodeField(value)
		if err != nil {
			return err
		}
		names = append(names, col.Name)
		args = append(args, encoded)
	}

	if e.GetID() == 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(names, ", "), placeholders)
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		e.SetID(id)
		return nil
	}

	sets := make([]string, len(names))
	for i, name := range names {
		sets[i] = name + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	result, err := tx.ExecContext(ctx, query, append(args, e.GetID())...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)+1), ", ")
		query := fmt.Sprintf("INSERT INTO %s (id, %s) VALUES (%s)", table, strings.Join(names, ", "), placeholders)
		_, err = tx.ExecContext(ctx, query, append([]interface{}{e.GetID()}, args...)...)
		return err
	}
	return nil
}

func scanRow(rows *sql.Rows, e model.Entity, cols []model.Column) error {
	dests := make([]interface{}, len(cols))
	finishers := make([]func() error, len(cols))
	for i, col := range cols {
		dests[i], finishers[i] = scanDest(e, col)
	}
	if err := rows.Scan(dests...); err != nil {
		return err
	}
	for _, finish := range finishers {
		if err := finish(); err != nil {
			return err
		}
	}
	return nil
}

// translateErr maps a SQLite constraint failure onto the shared error
// taxonomy so callers see the same rejected-write shape on every tier.
func translateErr(kind model.Kind, err error) error {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return err
	}
	if serr.Code != sqlite3.ErrConstraint {
		return err
	}
	return &storage.IntegrityError{Kind: kind, Columns: constraintColumns(kind, serr.Error()), Err: err}
}

// constraintColumns pulls column names out of messages like
// "UNIQUE constraint failed: accounts.login".
func constraintColumns(kind model.Kind, msg string) []string {
	_, list, ok := strings.Cut(msg, "constraint failed: ")
	if !ok {
		keys := model.UniqueKeys(kind)
		if len(keys) > 0 {
			return keys[0]
		}
		return nil
	}
	var columns []string
	for _, qualified := range strings.Split(list, ", ") {
		if _, col, ok := strings.Cut(qualified, "."); ok {
			columns = append(columns, col)
		} else {
			columns = append(columns, qualified)
		}
	}
	return columns
}
