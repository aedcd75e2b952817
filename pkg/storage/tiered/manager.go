package tiered

import (
	"context"
	"fmt"
	"sync"

	"github.com/PattemChaitanya/custom-gateway/pkg/audit"
	"github.com/PattemChaitanya/custom-gateway/pkg/config"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/memory"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/postgres"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/sqlite"
)

// adapter is the common surface the manager needs from every tier.
type adapter interface {
	Session() storage.Session
	Close() error
}

// Manager selects and owns the active storage tier. All methods are safe
// for concurrent use. Tier selection runs outside the mutex so sessions
// requested during a transition are refused immediately instead of
// blocking behind a slow connection attempt.
type Manager struct {
	cfg *config.GatewayConfig

	mu            sync.Mutex
	active        storage.Tier
	adapter       adapter
	transitioning bool
}

// NewManager returns an uninitialized manager. Call Initialize before
// requesting sessions.
func NewManager(cfg *config.GatewayConfig) *Manager {
	return &Manager{cfg: cfg, active: storage.TierNone}
}

// Initialize walks the tiers in order of preference until one comes up.
// The in-memory tier cannot fail, so Initialize never returns a tier
// selection error; only a context already expired before any attempt is
// reported. Calling Initialize on an initialized manager is a no-op.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.active != storage.TierNone {
		m.mu.Unlock()
		return nil
	}
	if m.transitioning {
		m.mu.Unlock()
		return storage.ErrTierTransition
	}
	m.transitioning = true
	m.mu.Unlock()
	defer m.endTransition()

	return m.selectTier(ctx, storage.TierNone)
}

// selectTier runs the sweep starting at the first tier, or at forceTier
// when set. The caller must have marked the manager as transitioning.
func (m *Manager) selectTier(ctx context.Context, forceTier storage.Tier) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrInitializationTimeout, err)
	}

	sweepCtx, cancel := context.WithTimeout(ctx, m.cfg.TotalTimeout())
	defer cancel()

	fellBack := false

	if forceTier == storage.TierNone || forceTier == storage.TierPrimary {
		if m.cfg.DatabaseURL == "" {
			audit.Log(audit.TierSkippedEvent{
				Tier:         storage.TierPrimary.String(),
				ErrorMessage: "no database URL configured",
			})
		} else {
			a, err := m.connectPrimary(sweepCtx)
			if err == nil {
				m.activate(storage.TierPrimary, a, false)
				return nil
			}
			audit.Log(audit.TierSkippedEvent{
				Tier:         storage.TierPrimary.String(),
				ErrorMessage: err.Error(),
			})
			fellBack = true
		}
	}

	if forceTier != storage.TierTertiary {
		a, err := m.openSecondary(sweepCtx)
		if err == nil {
			m.activate(storage.TierSecondary, a, fellBack)
			return nil
		}
		audit.Log(audit.TierSkippedEvent{
			Tier:         storage.TierSecondary.String(),
			ErrorMessage: err.Error(),
		})
		fellBack = true
	}

	m.activate(storage.TierTertiary, memory.New(), fellBack)
	return nil
}

// connectPrimary attempts the networked tier under its own timeout. The
// attempt runs in a goroutine so a driver that ignores the context cannot
// hold up the sweep; an adapter that arrives after the deadline is closed.
func (m *Manager) connectPrimary(ctx context.Context) (*postgres.Adapter, error) {
	attemptCtx := ctx
	if t := m.cfg.PrimaryTimeout(); t > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	type result struct {
		adapter *postgres.Adapter
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		a, err := postgres.Connect(attemptCtx, postgres.Config{
			DSN:          m.cfg.DatabaseURL,
			ProbeTimeout: m.cfg.PrimaryTimeout(),
			PoolSize:     m.cfg.PoolSize,
			MaxOverflow:  m.cfg.MaxOverflow,
			RecycleAge:   m.cfg.PoolRecycle(),
			LogSQL:       m.cfg.LogSQL,
		})
		ch <- result{adapter: a, err: err}
	}()

	select {
	case res := <-ch:
		return res.adapter, res.err
	case <-attemptCtx.Done():
		go func() {
			// Reap the abandoned attempt if it ever completes.
			if res := <-ch; res.adapter != nil {
				_ = res.adapter.Close()
			}
		}()
		return nil, fmt.Errorf("%w: %v", storage.ErrInitializationTimeout, attemptCtx.Err())
	}
}

func (m *Manager) openSecondary(ctx context.Context) (*sqlite.Adapter, error) {
	attemptCtx := ctx
	if t := m.cfg.SecondaryTimeout(); t > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	return sqlite.Open(attemptCtx, m.cfg.SQLitePath)
}

func (m *Manager) activate(tier storage.Tier, a adapter, fallback bool) {
	m.mu.Lock()
	m.active = tier
	m.adapter = a
	m.mu.Unlock()
	audit.Log(audit.TierActivatedEvent{Tier: tier.String(), Fallback: fallback})
}

func (m *Manager) endTransition() {
	m.mu.Lock()
	m.transitioning = false
	m.mu.Unlock()
}

// Session returns a session bound to the active tier. During a tier
// transition sessions are refused rather than handed a dying adapter.
func (m *Manager) Session() (storage.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.transitioning {
		return nil, storage.ErrTierTransition
	}
	if m.active == storage.TierNone || m.adapter == nil {
		return nil, storage.ErrClosed
	}
	return m.adapter.Session(), nil
}

// ActiveTier reports which tier currently serves sessions.
func (m *Manager) ActiveTier() storage.Tier {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// HealthCheck reports the state of the active tier. Only the primary tier
// is probed live; the embedded tiers cannot fail once constructed and are
// reported degraded because they are fallbacks, not the preferred store.
func (m *Manager) HealthCheck(ctx context.Context) storage.Health {
	m.mu.Lock()
	active := m.active
	a := m.adapter
	m.mu.Unlock()

	switch active {
	case storage.TierPrimary:
		if p, ok := a.(*postgres.Adapter); ok {
			if err := p.Ping(ctx); err != nil {
				return storage.Health{
					Status:  storage.StatusDegraded,
					Tier:    active,
					Message: fmt.Sprintf("primary database unreachable: %v", err),
				}
			}
		}
		return storage.Health{Status: storage.StatusHealthy, Tier: active}
	case storage.TierSecondary:
		return storage.Health{
			Status:  storage.StatusDegraded,
			Tier:    active,
			Message: "serving from embedded file store",
		}
	case storage.TierTertiary:
		return storage.Health{
			Status:  storage.StatusDegraded,
			Tier:    active,
			Message: "serving from in-memory store, writes are not durable",
		}
	}
	return storage.Health{
		Status:  storage.StatusUnhealthy,
		Tier:    storage.TierNone,
		Message: "storage not initialized",
	}
}

// Stats returns the number of stored entities per kind on the active tier.
func (m *Manager) Stats(ctx context.Context) (map[string]int, error) {
	m.mu.Lock()
	a := m.adapter
	m.mu.Unlock()

	switch t := a.(type) {
	case *postgres.Adapter:
		return t.Stats(ctx)
	case *sqlite.Adapter:
		return t.Stats(ctx)
	case *memory.Store:
		return t.Stats(), nil
	}
	return nil, storage.ErrClosed
}

// Shutdown releases the active tier. The manager can be initialized again
// afterwards.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	if m.active == storage.TierNone {
		m.mu.Unlock()
		return nil
	}
	tier := m.active
	a := m.adapter
	m.active = storage.TierNone
	m.adapter = nil
	m.mu.Unlock()

	audit.Log(audit.ShutdownEvent{Tier: tier.String()})
	if a != nil {
		return a.Close()
	}
	return nil
}

// Reinitialize tears down the active tier and re-runs tier selection.
// forceTier skips the tiers above it; TierNone means the full sweep.
// Sessions requested while the transition is in flight are refused with
// ErrTierTransition.
func (m *Manager) Reinitialize(ctx context.Context, forceTier storage.Tier) error {
	m.mu.Lock()
	if m.transitioning {
		m.mu.Unlock()
		return storage.ErrTierTransition
	}
	m.transitioning = true
	from := m.active
	m.mu.Unlock()
	defer m.endTransition()

	event := audit.ReinitializeEvent{FromTier: from.String()}
	if forceTier != storage.TierNone {
		event.ForceTier = forceTier.String()
	}
	audit.Log(event)

	if err := m.Shutdown(); err != nil {
		audit.Log(audit.TierSkippedEvent{
			Tier:         from.String(),
			ErrorMessage: fmt.Sprintf("shutdown reported: %v", err),
		})
	}
	return m.selectTier(ctx, forceTier)
}
