package client

//go:generate mockgen -source=app.go -destination=app_mock.go -package=client

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// DefaultLoginError is shown when the server gave no message.
const DefaultLoginError = "An error occurred. Please try again."

// API is the part of TodoClient the App needs.
type API interface {
	Login(ctx context.Context, username, email string) (*LoginResponse, error)
	GetAllTodos(ctx context.Context) ([]models.Todo, error)
	GetUserTodos(ctx context.Context, username string) ([]models.Todo, error)
	AddNewTodo(ctx context.Context, content string) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int64, content *string, hasCompleted *bool) (*models.Todo, error)
	RemoveTodo(ctx context.Context, id int64) (*models.Todo, error)
}

// LoginError carries the message to show after a failed login.
type LoginError struct {
	Msg string
	Err error
}

func (e *LoginError) Error() string { return e.Msg }

func (e *LoginError) Unwrap() error { return e.Err }

// App is the client-side state of a todo list session.
type App struct {
	api API

	mu       sync.Mutex
	todos    []models.Todo
	loggedIn bool
	username string
	editing  map[int64]bool
}

// NewApp creates a logged-out App.
func NewApp(api API) *App {
	return &App{api: api, editing: make(map[int64]bool)}
}

// Login logs in and loads every user's todos.
// A failed todo load is logged and leaves the list empty.
func (a *App) Login(ctx context.Context, username, email string) error {
	if _, err := a.api.Login(ctx, username, email); err != nil {
		msg := DefaultLoginError
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Msg != "" {
			msg = apiErr.Msg
		}
		return &LoginError{Msg: msg, Err: err}
	}

	todos, err := a.api.GetAllTodos(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load todos after login", "username", username, "error", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = true
	a.username = username
	a.todos = todos
	return nil
}

// LoggedIn reports whether Login succeeded.
func (a *App) LoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

// Username returns the logged-in username.
func (a *App) Username() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.username
}

// Todos returns a copy of the list ordered by ascending id.
func (a *App) Todos() []models.Todo {
	a.mu.Lock()
	defer a.mu.Unlock()

	todos := slices.Clone(a.todos)
	slices.SortFunc(todos, func(x, y models.Todo) int {
		switch {
		case x.ID < y.ID:
			return -1
		case x.ID > y.ID:
			return 1
		}
		return 0
	})
	return todos
}

// LoadUserTodos replaces the list with the logged-in user's todos.
// A user without todos gets an empty list.
func (a *App) LoadUserTodos(ctx context.Context) error {
	todos, err := a.api.GetUserTodos(ctx, a.Username())
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
			return err
		}
		todos = nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.todos = todos
	return nil
}

// AddTodo creates a todo and puts it at the front of the list.
func (a *App) AddTodo(ctx context.Context, content string) (*models.Todo, error) {
	todo, err := a.api.AddNewTodo(ctx, content)
	if err != nil {
		return nil, err
	}
	if todo.Username == "" {
		todo.Username = a.Username()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.todos = append([]models.Todo{*todo}, a.todos...)
	return todo, nil
}

// ToggleEdit flips the editing state of a todo. It does not call the server.
func (a *App) ToggleEdit(id int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.editing[id] {
		delete(a.editing, id)
		return
	}
	a.editing[id] = true
}

// IsEditing reports whether a todo is being edited.
func (a *App) IsEditing(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editing[id]
}

// SaveEdit stores new content for a todo and ends its edit.
func (a *App) SaveEdit(ctx context.Context, id int64, content string) error {
	todo, err := a.api.UpdateTodo(ctx, id, &content, nil)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.replace(id, todo)
	delete(a.editing, id)
	return nil
}

// SetCompleted stores the completion flag of a todo.
func (a *App) SetCompleted(ctx context.Context, id int64, completed bool) error {
	todo, err := a.api.UpdateTodo(ctx, id, nil, &completed)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.replace(id, todo)
	return nil
}

// Delete removes a todo on the server and from the list.
func (a *App) Delete(ctx context.Context, id int64) error {
	if _, err := a.api.RemoveTodo(ctx, id); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.todos = slices.DeleteFunc(a.todos, func(t models.Todo) bool { return t.ID == id })
	delete(a.editing, id)
	return nil
}

// replace swaps in the updated row, keeping the joined username. Callers hold a.mu.
func (a *App) replace(id int64, updated *models.Todo) {
	if updated == nil {
		return
	}
	for i := range a.todos {
		if a.todos[i].ID != id {
			continue
		}
		if updated.Username == "" {
			updated.Username = a.todos[i].Username
		}
		a.todos[i] = *updated
		return
	}
}
