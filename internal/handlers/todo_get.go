package handlers

//go:generate mockgen -source=todo_get.go -destination=todo_get_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

// TodoGetter defines the interface that the todo service must implement.
type TodoGetter interface {
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)
	ListUserTodos(ctx context.Context, username string) ([]models.Todo, error)
}

// UserTodosRequest is the optional JSON body of a per-user listing.
// swagger:model UserTodosRequest
type UserTodosRequest struct {
	// Username, takes precedence over the path segment
	Username string `json:"username"`
}

// NewGetTodoHandler returns an HTTP handler for GET /todo/{id}.
// A segment made only of digits is a todo id, anything else names a user whose todos are listed.
// @Summary Get a todo or a user's todos
// @Description Numeric key: the todo with that id. Otherwise: the user's todos, snapshotted to the user's daily file
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id or username"
// @Success 200 {object} models.Todo "Todo, or an array of todos for a username"
// @Failure 400 {object} handlers.ErrorResponse "Username is required, or the segment is not valid percent-encoding"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todo/{id} [get]
func NewGetTodoHandler(svc TodoGetter, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := url.PathUnescape(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid path segment")
			return
		}

		if isDigits(key) {
			getTodoByID(w, r, svc, authorizer, key)
			return
		}

		var req UserTodosRequest
		if r.Body != nil {
			// GET bodies are optional; a missing or malformed one falls back to the path.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		username := req.Username
		if username == "" {
			username = key
		}
		listUserTodos(w, r, svc, authorizer, username)
	}
}

func getTodoByID(w http.ResponseWriter, r *http.Request, svc TodoGetter, authorizer Authorizer, key string) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid todo id")
		return
	}
	if !authorize(w, r, authorizer, "") {
		return
	}

	todo, err := svc.GetTodo(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			writeError(w, http.StatusNotFound, "Todo not found")
			return
		}
		logger.FromContext(r.Context()).Errorw("failed to get todo", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func listUserTodos(w http.ResponseWriter, r *http.Request, svc TodoGetter, authorizer Authorizer, username string) {
	if username == "" {
		writeError(w, http.StatusBadRequest, "Username is required")
		return
	}
	if !authorize(w, r, authorizer, username) {
		return
	}

	todos, err := svc.ListUserTodos(r.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrNoTodosForUser) {
			writeError(w, http.StatusNotFound, "No todos found for this user")
			return
		}
		logger.FromContext(r.Context()).Errorw("failed to list user todos", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
