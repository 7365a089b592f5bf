package service

import (
	"context"

	"freelancetrack/internal/models"
	"freelancetrack/internal/query"
)

// The services depend on narrow store interfaces so the orchestration logic is
// testable without a database. The repository package provides the SQLite
// implementations.

type ProjectSource interface {
	Add(ctx context.Context, req *models.CreateProjectRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Project, error)
	Update(ctx context.Context, id string, update *models.UpdateProjectRequest) error
	Remove(ctx context.Context, id string) error
}

type TaskSource interface {
	Add(ctx context.Context, req *models.CreateTaskRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Task, error)
	Update(ctx context.Context, id string, update *models.UpdateTaskRequest) error
	Remove(ctx context.Context, id string) error
}

type EntrySource interface {
	Add(ctx context.Context, req *models.CreateTimeEntryRequest) (string, error)
	GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.TimeEntry, error)
	Remove(ctx context.Context, id string) error
}
