package facades

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// SnapshotFileWriter appends human-readable todo snapshots to one text file
// per user and day: <dir>/<username>_<YYYY-MM-DD>.txt. Nothing reads them back.
type SnapshotFileWriter struct {
	dir string
}

// NewSnapshotFileWriter creates a writer that stores files under dir.
func NewSnapshotFileWriter(dir string) *SnapshotFileWriter {
	return &SnapshotFileWriter{dir: dir}
}

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_", "..", "_")

// SnapshotPath returns the file a snapshot of username taken on date goes to.
func (w *SnapshotFileWriter) SnapshotPath(username, date string) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.txt", fileNameReplacer.Replace(username), date))
}

// WriteSnapshot appends the snapshot block in a single write. Files are only
// ever opened in append mode, so concurrent writers never rewrite each other.
func (w *SnapshotFileWriter) WriteSnapshot(ctx context.Context, snapshot models.TodoSnapshot) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	path := w.SnapshotPath(snapshot.Username, snapshot.Date)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open snapshot file: %w", err)
	}

	_, err = f.WriteString(FormatSnapshot(snapshot))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}

	logger.FromContext(ctx).Infow("todo snapshot saved", "path", path, "todos", len(snapshot.Todos))
	return nil
}

// FormatSnapshot renders the text block appended for a snapshot.
func FormatSnapshot(snapshot models.TodoSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Todo List for %s - %s\n\n", snapshot.Username, snapshot.Date)
	for i, todo := range snapshot.Todos {
		completed := "No"
		if todo.HasCompleted {
			completed = "Yes"
		}
		fmt.Fprintf(&b, "Todo %d:\nContent: %s\nCompleted: %s\n\n", i+1, todo.Content, completed)
	}
	return b.String()
}
