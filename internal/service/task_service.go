package service

import (
	"context"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"
	"freelancetrack/internal/stats"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TaskService struct {
	tasks   TaskSource
	entries EntrySource
	logger  *zap.Logger
}

func NewTaskService(tasks TaskSource, entries EntrySource, logger *zap.Logger) *TaskService {
	return &TaskService{
		tasks:   tasks,
		entries: entries,
		logger:  logger,
	}
}

func (s *TaskService) Create(ctx context.Context, req *models.CreateTaskRequest) (string, error) {
	if req.ProjectID == "" {
		return "", apperr.Validation("no project selected")
	}
	if req.Name == "" {
		return "", apperr.Validation("task name is required")
	}
	if req.EstimatedHours <= 0 {
		return "", apperr.Validation("estimated hours must be greater than zero")
	}
	return s.tasks.Add(ctx, req)
}

func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id string, req *models.UpdateTaskRequest) error {
	if req.Status != nil {
		switch *req.Status {
		case models.TaskPending, models.TaskInProgress, models.TaskCompleted, models.TaskCancelled:
		default:
			return apperr.Validation("invalid task status %q", *req.Status)
		}
	}
	if req.EstimatedHours != nil && *req.EstimatedHours <= 0 {
		return apperr.Validation("estimated hours must be greater than zero")
	}
	return s.tasks.Update(ctx, id, req)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Remove(ctx, id)
}

// ListWithActuals loads a project's tasks and reconciles each against its time
// entries. The per-task entry queries run concurrently; if any one fails the
// whole batch fails rather than returning a task with assumed-zero hours.
func (s *TaskService) ListWithActuals(ctx context.Context, userID, projectID string) ([]models.TaskWithActuals, error) {
	tasks, err := s.tasks.GetAll(ctx, []query.Condition{
		query.Eq("user_id", userID),
		query.Eq("project_id", projectID),
	}, nil)
	if err != nil {
		return nil, err
	}

	entriesPerTask := make([][]models.TimeEntry, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			entries, err := s.entries.GetAll(ctx, []query.Condition{
				query.Eq("user_id", userID),
				query.Eq("task_id", task.ID),
			}, nil)
			if err != nil {
				return err
			}
			entriesPerTask[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]models.TaskWithActuals, len(tasks))
	for i, task := range tasks {
		results[i] = stats.Reconcile(task, entriesPerTask[i])
	}

	s.logger.Debug("Tasks reconciled",
		zap.String("project_id", projectID),
		zap.Int("count", len(results)),
	)
	return results, nil
}
