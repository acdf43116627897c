package models

import "time"

// SnapshotEntry is a single todo as written to a snapshot.
type SnapshotEntry struct {
	Content      string `json:"content"`
	HasCompleted bool   `json:"has_completed"`
}

// TodoSnapshot is a point-in-time copy of some of a user's todos, handed to
// snapshot sinks after a todo write or a per-user listing.
type TodoSnapshot struct {
	EventID   string          `json:"event_id"`  // Unique identifier of the snapshot event
	Username  string          `json:"username"`  // Owner of the todos
	Date      string          `json:"date"`      // UTC day, YYYY-MM-DD
	Timestamp int64           `json:"timestamp"` // Unix seconds when the snapshot was taken
	Todos     []SnapshotEntry `json:"todos"`
}

// SnapshotDateLayout is the layout of TodoSnapshot.Date.
const SnapshotDateLayout = "2006-01-02"

// NewTodoSnapshot builds a snapshot of todos for username taken at now.
func NewTodoSnapshot(eventID, username string, now time.Time, todos []SnapshotEntry) TodoSnapshot {
	now = now.UTC()
	return TodoSnapshot{
		EventID:   eventID,
		Username:  username,
		Date:      now.Format(SnapshotDateLayout),
		Timestamp: now.Unix(),
		Todos:     todos,
	}
}
