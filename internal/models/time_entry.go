package models

import "time"

// TimeEntry is a single recorded block of worked time. Entries are immutable
// once created; corrections are made by removing and re-logging.
type TimeEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	TaskID    string    `json:"task_id"`
	Hours     float64   `json:"hours"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTimeEntryRequest struct {
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	TaskID    string    `json:"task_id"`
	Hours     float64   `json:"hours"`
	StartTime time.Time `json:"start_time"`
}
