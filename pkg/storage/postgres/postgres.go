// Package postgres implements the primary storage tier: pooled connections
// to a remote PostgreSQL server. A short connectivity probe runs before the
// pool is constructed so a dead or slow server cannot hang initialization.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
)

// Config holds the primary tier's connection settings. TLS options travel
// inside the DSN and are not interpreted by this layer.
type Config struct {
	// DSN is the PostgreSQL connection URL.
	DSN string
	// ProbeTimeout bounds the pre-pool connectivity check.
	ProbeTimeout time.Duration
	// PoolSize is the number of idle connections to maintain.
	PoolSize int
	// MaxOverflow is the number of extra connections allowed beyond
	// PoolSize.
	MaxOverflow int
	// RecycleAge is the maximum lifetime of a pooled connection.
	RecycleAge time.Duration
	// LogSQL enables statement logging.
	LogSQL bool
}

// Adapter owns the GORM handle and its underlying pool.
type Adapter struct {
	db  *gorm.DB
	dsn string
}

// Probe verifies the server answers within ctx's deadline, without
// constructing the pool.
func Probe(ctx context.Context, dsn string) error {
	probe, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}
	defer func() { _ = probe.Close() }()
	if err := probe.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}
	return nil
}

// Connect probes the server, opens the pooled connection, and ensures the
// schema exists.
func Connect(ctx context.Context, cfg Config) (*Adapter, error) {
	probeCtx := ctx
	if cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, cfg.ProbeTimeout)
		defer cancel()
	}
	if err := Probe(probeCtx, cfg.DSN); err != nil {
		return nil, err
	}

	logMode := logger.Silent
	if cfg.LogSQL {
		logMode = logger.Info
	}
	gdb, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrConnectionFailed, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if cfg.PoolSize > 0 {
		sqlDB.SetMaxIdleConns(cfg.PoolSize)
		sqlDB.SetMaxOpenConns(cfg.PoolSize + cfg.MaxOverflow)
	}
	if cfg.RecycleAge > 0 {
		sqlDB.SetConnMaxLifetime(cfg.RecycleAge)
	}

	a := &Adapter{db: gdb, dsn: cfg.DSN}
	if err := a.ensureSchema(); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

// NewAdapter wraps an existing GORM handle. Used by tests to substitute a
// mocked connection.
func NewAdapter(gdb *gorm.DB) *Adapter {
	return &Adapter{db: gdb}
}

// Session checks a handle out of the pool's scope. Each call yields an
// independent staged-write queue.
func (a *Adapter) Session() storage.Session {
	return &session{adapter: a}
}

// Ping performs a live round-trip probe.
func (a *Adapter) Ping(ctx context.Context) error {
	if a.db == nil {
		return storage.ErrClosed
	}
	return a.db.WithContext(ctx).Exec("SELECT 1").Error
}

// Close releases the connection pool.
func (a *Adapter) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	a.db = nil
	return sqlDB.Close()
}

// Stats returns the number of stored entities per kind.
func (a *Adapter) Stats(ctx context.Context) (map[string]int, error) {
	if a.db == nil {
		return nil, storage.ErrClosed
	}
	stats := make(map[string]int, len(model.KindValues()))
	for _, kind := range model.KindValues() {
		var count int64
		err := a.db.WithContext(ctx).Table(model.Table(kind)).Count(&count).Error
		if err != nil {
			return nil, err
		}
		stats[kind.String()] = int(count)
	}
	return stats, nil
}
