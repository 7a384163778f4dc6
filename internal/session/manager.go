package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/checkout"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/google/uuid"
)

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	idleTimeout   time.Duration
	sweepInterval time.Duration

	validator *checkout.Validator
	assembler *checkout.Assembler
	listener  Listener
}

func NewManager(cfg *config.SessionConfig, v *checkout.Validator, a *checkout.Assembler, listener Listener) *Manager {
	if listener == nil {
		listener = NopListener{}
	}

	return &Manager{
		sessions:      make(map[string]*Session),
		idleTimeout:   cfg.IdleTimeout,
		sweepInterval: cfg.SweepInterval,
		validator:     v,
		assembler:     a,
		listener:      listener,
	}
}

// NewID mints a session id for shoppers that did not present one.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id minted by NewID.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// Get returns the session for id, creating it when unknown, and marks it as
// active now.
func (m *Manager) Get(id string) (*Session, bool) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		s.lastSeen = now
		return s, false
	}

	s := newSession(id, m.validator, m.assembler, m.listener, now)
	m.sessions[id] = s
	m.listener.SessionsActive(len(m.sessions))

	return s, true
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the idle timeout as of now and
// returns how many were removed. Evicted state is discarded.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.idleTimeout {
			delete(m.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		m.listener.SessionsActive(len(m.sessions))
	}

	return evicted
}

// Run sweeps idle sessions until ctx is cancelled.
func (m *Manager) Run(ctx context.Context) {
	if m.idleTimeout <= 0 || m.sweepInterval <= 0 {
		slog.Warn("Session sweeper disabled", slog.Duration("idle_timeout", m.idleTimeout), slog.Duration("sweep_interval", m.sweepInterval))
		return
	}

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := m.Sweep(now); n > 0 {
				slog.Info("Evicted idle sessions", slog.Int("evicted", n), slog.Int("active", m.Count()))
			}
		}
	}
}
