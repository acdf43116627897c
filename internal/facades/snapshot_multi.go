package facades

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// SnapshotWriter receives todo snapshots.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snapshot models.TodoSnapshot) error
}

// MultiSnapshotWriter hands every snapshot to all of its writers. A failing
// writer does not stop the others.
type MultiSnapshotWriter struct {
	writers []SnapshotWriter
}

func NewMultiSnapshotWriter(writers ...SnapshotWriter) *MultiSnapshotWriter {
	return &MultiSnapshotWriter{writers: writers}
}

// WriteSnapshot returns the joined errors of all writers.
func (m *MultiSnapshotWriter) WriteSnapshot(ctx context.Context, snapshot models.TodoSnapshot) error {
	var errs []error
	for _, w := range m.writers {
		if err := w.WriteSnapshot(ctx, snapshot); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
