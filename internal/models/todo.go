package models

import "time"

// Todo represents a row of the todo table.
// UserID is set on rows returned by inserts and updates, Username on rows
// joined with their owner.
// swagger:model Todo
type Todo struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	UserID       int64     `json:"user_id,omitempty" db:"user_id"`   // Owning user
	Content      string    `json:"content" db:"content"`             // Free text
	HasCompleted bool      `json:"has_completed" db:"has_completed"` // Completion flag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	Username     string    `json:"username,omitempty" db:"username"` // Owner username (joined)
}
