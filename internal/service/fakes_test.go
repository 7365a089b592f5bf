package service

import (
	"context"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"
)

// In-memory sources used across the service tests. GetAll honors the same
// conjunctive condition semantics the repositories implement, enough for the
// fields the services actually query.

type fakeProjectSource struct {
	projects []models.Project
	err      error
}

func (f *fakeProjectSource) Add(ctx context.Context, req *models.CreateProjectRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	p := models.Project{
		ID:         "project-" + req.Name,
		UserID:     req.UserID,
		Name:       req.Name,
		HourlyRate: req.HourlyRate,
		Status:     req.Status,
	}
	f.projects = append(f.projects, p)
	return p.ID, nil
}

func (f *fakeProjectSource) GetByID(ctx context.Context, id string) (*models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeProjectSource) GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []models.Project
	for _, p := range f.projects {
		if matchConds(conds, map[string]interface{}{
			"user_id": p.UserID,
			"status":  p.Status,
			"id":      p.ID,
		}, nil) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProjectSource) Update(ctx context.Context, id string, update *models.UpdateProjectRequest) error {
	return f.err
}

func (f *fakeProjectSource) Remove(ctx context.Context, id string) error {
	return f.err
}

type fakeTaskSource struct {
	tasks []models.Task
	err   error
}

func (f *fakeTaskSource) Add(ctx context.Context, req *models.CreateTaskRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.tasks = append(f.tasks, models.Task{
		ID:             "task-" + req.Name,
		UserID:         req.UserID,
		ProjectID:      req.ProjectID,
		Name:           req.Name,
		EstimatedHours: req.EstimatedHours,
		Status:         models.TaskPending,
	})
	return "task-" + req.Name, nil
}

func (f *fakeTaskSource) GetByID(ctx context.Context, id string) (*models.Task, error) {
	for _, task := range f.tasks {
		if task.ID == id {
			return &task, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeTaskSource) GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []models.Task
	for _, task := range f.tasks {
		if matchConds(conds, map[string]interface{}{
			"user_id":    task.UserID,
			"project_id": task.ProjectID,
			"status":     task.Status,
			"id":         task.ID,
		}, nil) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (f *fakeTaskSource) Update(ctx context.Context, id string, update *models.UpdateTaskRequest) error {
	return f.err
}

func (f *fakeTaskSource) Remove(ctx context.Context, id string) error {
	return f.err
}

type fakeEntrySource struct {
	entries []models.TimeEntry
	added   []*models.CreateTimeEntryRequest
	err     error
	// failTaskID makes the query for one specific task fail, to exercise the
	// fan-in barrier.
	failTaskID string
	failErr    error
}

func (f *fakeEntrySource) Add(ctx context.Context, req *models.CreateTimeEntryRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.added = append(f.added, req)
	return "entry-1", nil
}

func (f *fakeEntrySource) GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.TimeEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.failTaskID != "" {
		for _, c := range conds {
			if c.Field == "task_id" && c.Op == query.OpEq && c.Value == f.failTaskID {
				return nil, f.failErr
			}
		}
	}
	var result []models.TimeEntry
	for _, entry := range f.entries {
		if matchConds(conds, map[string]interface{}{
			"user_id":    entry.UserID,
			"project_id": entry.ProjectID,
			"task_id":    entry.TaskID,
		}, map[string]time.Time{
			"start_time": entry.StartTime,
		}) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (f *fakeEntrySource) Remove(ctx context.Context, id string) error {
	return f.err
}

func matchConds(conds []query.Condition, strFields map[string]interface{}, timeFields map[string]time.Time) bool {
	for _, c := range conds {
		if v, ok := strFields[c.Field]; ok {
			if c.Op == query.OpEq && v != c.Value {
				return false
			}
			continue
		}
		if v, ok := timeFields[c.Field]; ok {
			bound, isTime := c.Value.(time.Time)
			if !isTime {
				return false
			}
			switch c.Op {
			case query.OpGte:
				if v.Before(bound) {
					return false
				}
			case query.OpLte:
				if v.After(bound) {
					return false
				}
			}
		}
	}
	return true
}
