// Package sqlite implements the secondary storage tier: an embedded,
// file-backed, schema-managed store reached without network. It is slower
// to initialize than the in-memory tier because the schema is created on
// connect, but its data survives restarts.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

// Adapter owns the database handle and the staged-write machinery shared
// by its sessions. The secondary tier is not connection-pooled; sessions
// stage their own writes but drain them through this one handle.
type Adapter struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open connects to the database file, creating it and its schema when
// absent. Schema creation runs under ctx's deadline; expiry fails
// initialization so the tier manager can fall through to the next tier.
func Open(ctx context.Context, path string) (*Adapter, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}
	if err := createSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Adapter{db: db, path: path}, nil
}

// Path returns the database file path.
func (a *Adapter) Path() string { return a.path }

// Initialized reports whether the file handle is open.
func (a *Adapter) Initialized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db != nil
}

// Session returns a handle with its own staged-write queue.
func (a *Adapter) Session() storage.Session {
	return &session{adapter: a}
}

// Ping verifies the file handle still answers.
func (a *Adapter) Ping(ctx context.Context) error {
	a.mu.Lock()
	db := a.db
	a.mu.Unlock()
	if db == nil {
		return storage.ErrClosed
	}
	return db.PingContext(ctx)
}

// Close releases the file handle. The data stays on disk.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// Stats returns the number of stored entities per kind.
func (a *Adapter) Stats(ctx context.Context) (map[string]int, error) {
	a.mu.Lock()
	db := a.db
	a.mu.Unlock()
	if db == nil {
		return nil, storage.ErrClosed
	}

	stats := make(map[string]int, len(model.KindValues()))
	for _, kind := range model.KindValues() {
		var count int
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", model.Table(kind))
		if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, err
		}
		stats[kind.String()] = count
	}
	return stats, nil
}

func (a *Adapter) handle() (*sql.DB, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.db == nil {
		return nil, storage.ErrClosed
	}
	return a.db, nil
}
