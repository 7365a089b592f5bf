package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"

	"github.com/google/uuid"
)

var taskFields = map[string]bool{
	"id":         true,
	"user_id":    true,
	"project_id": true,
	"status":     true,
	"due_date":   true,
	"created_at": true,
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Add(ctx context.Context, req *models.CreateTaskRequest) (string, error) {
	id := uuid.New().String()

	tags, err := marshalTags(req.Tags)
	if err != nil {
		return "", err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, project_id, name, description, estimated_hours, status, due_date, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, req.UserID, req.ProjectID, req.Name, req.Description, req.EstimatedHours, models.TaskPending, req.DueDate, tags, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	return id, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, project_id, name, description, estimated_hours, status, due_date, tags, created_at
		FROM tasks
		WHERE id = ?
	`, id)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Task, error) {
	suffix, args, err := query.Compile(conds, sort, taskFields)
	if err != nil {
		return nil, fmt.Errorf("invalid task query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, project_id, name, description, estimated_hours, status, due_date, tags, created_at
		FROM tasks`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, update *models.UpdateTaskRequest) error {
	setParts := []string{}
	args := []interface{}{}

	if update.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		setParts = append(setParts, "description = ?")
		args = append(args, *update.Description)
	}
	if update.EstimatedHours != nil {
		setParts = append(setParts, "estimated_hours = ?")
		args = append(args, *update.EstimatedHours)
	}
	if update.Status != nil {
		setParts = append(setParts, "status = ?")
		args = append(args, *update.Status)
	}
	if update.DueDate != nil {
		setParts = append(setParts, "due_date = ?")
		args = append(args, *update.DueDate)
	}
	if update.Tags != nil {
		tags, err := marshalTags(update.Tags)
		if err != nil {
			return err
		}
		setParts = append(setParts, "tags = ?")
		args = append(args, tags)
	}

	if len(setParts) == 0 {
		return nil
	}

	setClause := setParts[0]
	for i := 1; i < len(setParts); i++ {
		setClause += ", " + setParts[i]
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx, fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", setClause), args...)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}

func (r *TaskRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}

func marshalTags(tags []string) (*string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	s := string(data)
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var task models.Task
	var description sql.NullString
	var tags sql.NullString

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.ProjectID,
		&task.Name,
		&description,
		&task.EstimatedHours,
		&task.Status,
		&task.DueDate,
		&tags,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &task.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return &task, nil
}
