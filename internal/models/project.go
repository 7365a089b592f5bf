package models

import "time"

// ProjectStatus values accepted by the store.
const (
	ProjectActive   = "active"
	ProjectInactive = "inactive"
)

type Project struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	HourlyRate float64   `json:"hourly_rate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateProjectRequest struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Status     string  `json:"status,omitempty"`
}

type UpdateProjectRequest struct {
	Name       *string  `json:"name,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	Status     *string  `json:"status,omitempty"`
}
