package tracking

import (
	"context"
	"errors"
	"sync"

	"github.com/Olii83/gym-tracker/internal/telemetry/metrics"
)

var (
	ErrSessionAlreadyActive = errors.New("a tracking session is already active")
	ErrNoActiveSession      = errors.New("no active tracking session")
)

// Manager holds at most one running session per user.
type Manager struct {
	mu       sync.Mutex
	ds       Datastore
	metrics  *metrics.Manager
	sessions map[string]*Session
}

func NewManager(ds Datastore, metricsManager *metrics.Manager) *Manager {
	return &Manager{
		ds:       ds,
		metrics:  metricsManager,
		sessions: make(map[string]*Session),
	}
}

// Start creates a session for the given training. A user with a
// running session has to finish or cancel it first.
func (m *Manager) Start(ctx context.Context, userID string, trainingID int) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[userID]; ok && existing.State() != StateTerminated {
		return nil, ErrSessionAlreadyActive
	}

	session, err := newSession(ctx, m.ds, userID, trainingID)
	if err != nil {
		return nil, err
	}

	m.sessions[userID] = session
	if m.metrics != nil {
		m.metrics.CounterSessionsStarted.Inc()
		m.metrics.GaugeActiveSessions.Inc()
	}
	return session, nil
}

func (m *Manager) Get(userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok || session.State() == StateTerminated {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// Stop forgets the user's session. Called after finish or cancel.
func (m *Manager) Stop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[userID]; !ok {
		return
	}
	delete(m.sessions, userID)
	if m.metrics != nil {
		m.metrics.GaugeActiveSessions.Dec()
	}
}
