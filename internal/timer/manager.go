package timer

import (
	"context"
	"sync"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"

	"go.uber.org/zap"
)

// Manager keeps at most one session per user. The session itself is agnostic
// about concurrent instantiation; this is where that rule lives.
type Manager struct {
	recorder     EntryRecorder
	tickInterval time.Duration
	logger       *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(recorder EntryRecorder, tickInterval time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		recorder:     recorder,
		tickInterval: tickInterval,
		logger:       logger,
		sessions:     make(map[string]*Session),
	}
}

// Start creates (or reuses) the user's session and begins tracking.
func (m *Manager) Start(userID, projectID, taskID string) error {
	if userID == "" {
		return apperr.Validation("user id is required")
	}

	m.mu.Lock()
	session, ok := m.sessions[userID]
	if !ok {
		session = NewSession(m.recorder, userID, m.tickInterval, m.logger)
		m.sessions[userID] = session
	}
	m.mu.Unlock()

	return session.Start(projectID, taskID)
}

// Stop stops the user's session and returns the persisted entry.
func (m *Manager) Stop(ctx context.Context, userID string) (*models.TimeEntry, error) {
	session := m.get(userID)
	if session == nil {
		return nil, apperr.Validation("no tracking session is running")
	}
	return session.Stop(ctx)
}

// Cancel discards the user's session, if any.
func (m *Manager) Cancel(userID string) {
	if session := m.get(userID); session != nil {
		session.Cancel()
	}
}

// Status reports the user's session state; idle when none exists.
func (m *Manager) Status(userID string) Status {
	session := m.get(userID)
	if session == nil {
		return Status{State: StateIdle}
	}
	return session.Status()
}

// Shutdown cancels every running session. Unsaved elapsed time is discarded,
// matching the no-crash-recovery contract.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Cancel()
	}
	m.logger.Info("Timer manager shut down", zap.Int("sessions", len(sessions)))
}

func (m *Manager) get(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}
