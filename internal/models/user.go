package models

// User represents a row of the "user" table.
// swagger:model User
type User struct {
	ID       int64   `json:"id" db:"id"`             // Primary key, generated by the store
	Username string  `json:"username" db:"username"` // Unique username
	Email    *string `json:"email" db:"email"`       // Email used together with username to log in
}
