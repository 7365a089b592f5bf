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

var timeEntryFields = map[string]bool{
	"id":         true,
	"user_id":    true,
	"project_id": true,
	"task_id":    true,
	"start_time": true,
	"created_at": true,
}

// TimeEntryRepository stores recorded work. Entries are immutable: there is no
// update path, only Add and Remove.
type TimeEntryRepository struct {
	db *sql.DB
}

func NewTimeEntryRepository(db *sql.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) Add(ctx context.Context, req *models.CreateTimeEntryRequest) (string, error) {
	id := uuid.New().String()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO time_entries (id, user_id, project_id, task_id, hours, start_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, req.UserID, req.ProjectID, req.TaskID, req.Hours, req.StartTime, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create time entry: %w", err)
	}

	return id, nil
}

func (r *TimeEntryRepository) GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.TimeEntry, error) {
	suffix, args, err := query.Compile(conds, sort, timeEntryFields)
	if err != nil {
		return nil, fmt.Errorf("invalid time entry query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, project_id, task_id, hours, start_time, created_at
		FROM time_entries`+suffix, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []models.TimeEntry
	for rows.Next() {
		var entry models.TimeEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ProjectID,
			&entry.TaskID,
			&entry.Hours,
			&entry.StartTime,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

func (r *TimeEntryRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM time_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("time entry %s: %w", id, apperr.ErrNotFound)
	}

	return nil
}
