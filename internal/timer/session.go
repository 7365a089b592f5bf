// Package timer manages the live tracking session lifecycle: start, 1-second
// ticks, and conversion of elapsed wall-clock time into a persisted time entry
// on stop. A session exists only in this process; nothing is recovered after a
// crash.
package timer

import (
	"context"
	"sync"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"

	"go.uber.org/zap"
)

// EntryRecorder persists the time entry produced when a session stops.
type EntryRecorder interface {
	Add(ctx context.Context, req *models.CreateTimeEntryRequest) (string, error)
}

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// Status is a snapshot of a session for display.
type Status struct {
	State          State  `json:"state"`
	ProjectID      string `json:"project_id,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
}

// Session is a single user's tracking session. The session does not guard
// against a user running several instances; keeping one session per user is
// the caller's job (see Manager).
type Session struct {
	recorder     EntryRecorder
	userID       string
	tickInterval time.Duration
	logger       *zap.Logger
	now          func() time.Time

	mu        sync.Mutex
	state     State
	projectID string
	taskID    string
	startedAt time.Time
	elapsed   int64 // seconds

	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewSession(recorder EntryRecorder, userID string, tickInterval time.Duration, logger *zap.Logger) *Session {
	return &Session{
		recorder:     recorder,
		userID:       userID,
		tickInterval: tickInterval,
		logger:       logger,
		now:          time.Now,
		state:        StateIdle,
	}
}

// Start begins tracking against the given task. A task must be selected.
func (s *Session) Start(projectID, taskID string) error {
	if taskID == "" {
		return apperr.Validation("no task selected")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		return apperr.Validation("a tracking session is already running")
	}

	s.state = StateRunning
	s.projectID = projectID
	s.taskID = taskID
	s.startedAt = s.now()
	s.elapsed = 0
	s.stopChan = make(chan struct{})

	s.wg.Add(1)
	go s.tickLoop(s.stopChan)

	s.logger.Info("Tracking session started",
		zap.String("user_id", s.userID),
		zap.String("task_id", taskID),
	)
	return nil
}

func (s *Session) tickLoop(stopChan chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.elapsed++
			s.mu.Unlock()
		case <-stopChan:
			return
		}
	}
}

// Stop converts the elapsed time into a persisted time entry and returns the
// session to idle. The entry's start time is the moment tracking began, not
// the stop moment. If persisting fails the session keeps running so no time
// is lost.
func (s *Session) Stop(ctx context.Context) (*models.TimeEntry, error) {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return nil, apperr.Validation("no tracking session is running")
	}
	req := &models.CreateTimeEntryRequest{
		UserID:    s.userID,
		ProjectID: s.projectID,
		TaskID:    s.taskID,
		Hours:     float64(s.elapsed) / 3600,
		StartTime: s.startedAt,
	}
	s.mu.Unlock()

	id, err := s.recorder.Add(ctx, req)
	if err != nil {
		return nil, err
	}

	s.reset()

	s.logger.Info("Tracking session stopped",
		zap.String("user_id", s.userID),
		zap.String("task_id", req.TaskID),
		zap.Float64("hours", req.Hours),
	)

	return &models.TimeEntry{
		ID:        id,
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
		Hours:     req.Hours,
		StartTime: req.StartTime,
	}, nil
}

// Cancel discards the session without persisting anything.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.reset()
	s.logger.Info("Tracking session cancelled", zap.String("user_id", s.userID))
}

// reset stops the tick loop and returns the session to idle.
func (s *Session) reset() {
	s.mu.Lock()
	stopChan := s.stopChan
	s.stopChan = nil
	s.mu.Unlock()

	if stopChan != nil {
		close(stopChan)
	}
	s.wg.Wait()

	s.mu.Lock()
	s.state = StateIdle
	s.projectID = ""
	s.taskID = ""
	s.elapsed = 0
	s.mu.Unlock()
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		State:          s.state,
		ProjectID:      s.projectID,
		TaskID:         s.taskID,
		ElapsedSeconds: s.elapsed,
	}
}
