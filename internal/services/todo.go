package services

//go:generate mockgen -source=todo.go -destination=todo_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// TodoReader defines read-only operations for todos.
type TodoReader interface {
	List(ctx context.Context) ([]models.Todo, error)
	GetByID(ctx context.Context, id int64) (*models.Todo, error)
	ListByUsername(ctx context.Context, username string) ([]models.Todo, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	Save(ctx context.Context, userID int64, content string) (*models.Todo, error)
	UpdateContent(ctx context.Context, id int64, content string) (*models.Todo, error)
	UpdateCompleted(ctx context.Context, id int64, hasCompleted bool) (*models.Todo, error)
	Delete(ctx context.Context, id int64) (*models.Todo, error)
}

// UserIDReader resolves usernames to user ids.
type UserIDReader interface {
	GetIDByUsername(ctx context.Context, username string) (*int64, error)
}

// UserIDCache caches username -> user id lookups.
type UserIDCache interface {
	GetIDByUsername(ctx context.Context, username string) (*int64, error)
	SetIDByUsername(ctx context.Context, username string, id int64) error
}

// SnapshotWriter receives a copy of a user's todos after they are written or listed.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, snapshot models.TodoSnapshot) error
}

// TodoService handles todo operations and snapshot side effects.
type TodoService struct {
	reader    TodoReader
	writer    TodoWriter
	users     UserIDReader
	cache     UserIDCache
	snapshots SnapshotWriter
	now       func() time.Time
}

// NewTodoService creates a new TodoService. cache and snapshots are optional.
func NewTodoService(
	reader TodoReader,
	writer TodoWriter,
	users UserIDReader,
	cache UserIDCache,
	snapshots SnapshotWriter,
) *TodoService {
	return &TodoService{
		reader:    reader,
		writer:    writer,
		users:     users,
		cache:     cache,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// writeSnapshot hands the todos to the snapshot sink after the store
// operation has succeeded. Errors never reach the caller.
func (s *TodoService) writeSnapshot(ctx context.Context, username string, entries []models.SnapshotEntry) {
	log := logger.FromContext(ctx)
	if s.snapshots == nil {
		log.Debugw("snapshot writer not configured, skipping snapshot", "username", username)
		return
	}

	snapshot := models.NewTodoSnapshot(uuid.NewString(), username, s.now(), entries)
	if err := s.snapshots.WriteSnapshot(context.WithoutCancel(ctx), snapshot); err != nil {
		log.Errorw("failed to write todo snapshot", "username", username, "event_id", snapshot.EventID, "error", err)
	}
}

// resolveUserID looks the username up in the cache first, then in the store.
func (s *TodoService) resolveUserID(ctx context.Context, username string) (*int64, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		id, err := s.cache.GetIDByUsername(ctx, username)
		if err != nil {
			log.Warnw("user id cache lookup failed", "username", username, "error", err)
		} else if id != nil {
			return id, nil
		}
	}

	id, err := s.users.GetIDByUsername(ctx, username)
	if err != nil || id == nil {
		return id, err
	}

	if s.cache != nil {
		if err := s.cache.SetIDByUsername(ctx, username, *id); err != nil {
			log.Warnw("failed to cache user id", "username", username, "error", err)
		}
	}
	return id, nil
}

// ListTodos returns every todo joined with its owner's username.
func (s *TodoService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.reader.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list todos", "error", err)
		return nil, err
	}
	return todos, nil
}

// GetTodo returns one todo joined with its owner's username.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get todo", "id", id, "error", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// ListUserTodos returns the todos of username and snapshots them.
func (s *TodoService) ListUserTodos(ctx context.Context, username string) ([]models.Todo, error) {
	todos, err := s.reader.ListByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list user todos", "username", username, "error", err)
		return nil, err
	}
	if len(todos) == 0 {
		return nil, ErrNoTodosForUser
	}

	entries := make([]models.SnapshotEntry, 0, len(todos))
	for _, todo := range todos {
		entries = append(entries, models.SnapshotEntry{Content: todo.Content, HasCompleted: todo.HasCompleted})
	}
	s.writeSnapshot(ctx, username, entries)

	return todos, nil
}

// AddTodo creates a todo owned by username and snapshots it.
func (s *TodoService) AddTodo(ctx context.Context, username, content string) (*models.Todo, error) {
	log := logger.FromContext(ctx)

	userID, err := s.resolveUserID(ctx, username)
	if err != nil {
		log.Errorw("failed to resolve user", "username", username, "error", err)
		return nil, err
	}
	if userID == nil {
		return nil, ErrUserNotFound
	}

	todo, err := s.writer.Save(ctx, *userID, content)
	if err != nil {
		log.Errorw("failed to save todo", "username", username, "error", err)
		return nil, err
	}

	s.writeSnapshot(ctx, username, []models.SnapshotEntry{{Content: todo.Content, HasCompleted: todo.HasCompleted}})

	return todo, nil
}

// UpdateTodo applies exactly one change to a todo: non-empty content wins,
// otherwise a non-nil completion flag. With neither, nothing is updated and
// (nil, nil) is returned.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, content *string, hasCompleted *bool) (*models.Todo, error) {
	var (
		todo *models.Todo
		err  error
	)

	switch {
	case content != nil && *content != "":
		todo, err = s.writer.UpdateContent(ctx, id, *content)
	case hasCompleted != nil:
		todo, err = s.writer.UpdateCompleted(ctx, id, *hasCompleted)
	default:
		return nil, nil
	}

	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update todo", "id", id, "error", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}

// DeleteTodo removes a todo and returns it.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) (*models.Todo, error) {
	todo, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete todo", "id", id, "error", err)
		return nil, err
	}
	if todo == nil {
		return nil, ErrTodoNotFound
	}
	return todo, nil
}
