package models

import "time"

// Task status constants matching the lifecycle a task moves through.
const (
	TaskPending    = "pending"
	TaskInProgress = "inProgress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"
)

type Task struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	ProjectID      string     `json:"project_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CreateTaskRequest struct {
	UserID         string     `json:"user_id"`
	ProjectID      string     `json:"project_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
}

type UpdateTaskRequest struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	Status         *string    `json:"status,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
}

// TaskWithActuals is the reconciliation projection: a task joined with the
// hours actually booked against it. ActualHours and HoursDiff are rounded to
// two decimals so displayed variance stays stable across many small entries.
type TaskWithActuals struct {
	Task
	ActualHours float64 `json:"actual_hours"`
	HoursDiff   float64 `json:"hours_diff"`
}
