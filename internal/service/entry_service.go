package service

import (
	"context"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"

	"go.uber.org/zap"
)

type EntryService struct {
	entries EntrySource
	logger  *zap.Logger
	now     func() time.Time
}

func NewEntryService(entries EntrySource, logger *zap.Logger) *EntryService {
	return &EntryService{
		entries: entries,
		logger:  logger,
		now:     time.Now,
	}
}

// LogManual records a manually entered block of work. Project, task and a
// positive hour count are required; validation failures abort before any
// store write.
func (s *EntryService) LogManual(ctx context.Context, userID, projectID, taskID string, hours float64) (string, error) {
	if projectID == "" || taskID == "" {
		return "", apperr.Validation("select a project and task before logging time")
	}
	if hours <= 0 {
		return "", apperr.Validation("hours must be greater than zero")
	}

	id, err := s.entries.Add(ctx, &models.CreateTimeEntryRequest{
		UserID:    userID,
		ProjectID: projectID,
		TaskID:    taskID,
		Hours:     hours,
		StartTime: s.now(),
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Manual time entry logged",
		zap.String("user_id", userID),
		zap.String("task_id", taskID),
		zap.Float64("hours", hours),
	)
	return id, nil
}

// Recent returns the user's time entries, newest first.
func (s *EntryService) Recent(ctx context.Context, userID string) ([]models.TimeEntry, error) {
	return s.entries.GetAll(ctx,
		[]query.Condition{query.Eq("user_id", userID)},
		&query.Sort{Field: "start_time", Desc: true},
	)
}

func (s *EntryService) Delete(ctx context.Context, id string) error {
	return s.entries.Remove(ctx, id)
}
