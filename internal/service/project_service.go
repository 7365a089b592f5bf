package service

import (
	"context"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"

	"go.uber.org/zap"
)

type ProjectService struct {
	projects ProjectSource
	logger   *zap.Logger
}

func NewProjectService(projects ProjectSource, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		logger:   logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (string, error) {
	if req.Name == "" {
		return "", apperr.Validation("project name is required")
	}
	if req.HourlyRate < 0 {
		return "", apperr.Validation("hourly rate cannot be negative")
	}
	return s.projects.Add(ctx, req)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// List returns the user's projects, optionally restricted to one status.
func (s *ProjectService) List(ctx context.Context, userID, status string) ([]models.Project, error) {
	conds := []query.Condition{query.Eq("user_id", userID)}
	if status != "" {
		conds = append(conds, query.Eq("status", status))
	}
	return s.projects.GetAll(ctx, conds, &query.Sort{Field: "created_at", Desc: true})
}

func (s *ProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) error {
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return apperr.Validation("hourly rate cannot be negative")
	}
	if req.Status != nil && *req.Status != models.ProjectActive && *req.Status != models.ProjectInactive {
		return apperr.Validation("invalid project status %q", *req.Status)
	}
	return s.projects.Update(ctx, id, req)
}

// Delete removes the project record. Time entries that reference it become
// orphans and drop out of aggregation.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	s.logger.Info("Deleting project", zap.String("project_id", id))
	return s.projects.Remove(ctx, id)
}
