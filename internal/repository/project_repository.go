package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"

	"github.com/google/uuid"
)

var projectFields = map[string]bool{
	"id":         true,
	"user_id":    true,
	"name":       true,
	"status":     true,
	"created_at": true,
}

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Add(ctx context.Context, req *models.CreateProjectRequest) (string, error) {
	id := uuid.New().String()
	status := req.Status
	if status == "" {
		status = models.ProjectActive
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, user_id, name, hourly_rate, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, req.UserID, req.Name, req.HourlyRate, status, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}

	return id, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, hourly_rate, status, created_at
		FROM projects
		WHERE id = ?
	`, id).Scan(&p.ID, &p.UserID, &p.Name, &p.HourlyRate, &p.Status, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &p, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Project, error) {
	suffix, args, err := query.Compile(conds, sort, projectFields)
	if err != nil {
		return nil, fmt.Errorf("invalid project query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, hourly_rate, status, created_at
		FROM projects`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.HourlyRate, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, update *models.UpdateProjectRequest) error {
	setParts := []string{}
	args := []interface{}{}

	if update.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *update.Name)
	}
	if update.HourlyRate != nil {
		setParts = append(setParts, "hourly_rate = ?")
		args = append(args, *update.HourlyRate)
	}
	if update.Status != nil {
		setParts = append(setParts, "status = ?")
		args = append(args, *update.Status)
	}

	if len(setParts) == 0 {
		return nil
	}

	setClause := setParts[0]
	for i := 1; i < len(setParts); i++ {
		setClause += ", " + setParts[i]
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx, fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", setClause), args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("project %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}

// Remove deletes the project only. Historical time entries referencing it stay
// behind as orphans and are excluded from aggregation.
func (r *ProjectRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("project %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}
