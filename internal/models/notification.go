package models

import "time"

// Notification is a deadline warning. Warnings do not auto-dismiss; they stay
// until dismissed explicitly.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TaskID    string    `json:"task_id"`
	TaskName  string    `json:"task_name"`
	HoursLeft int       `json:"hours_left"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
