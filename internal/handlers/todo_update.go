package handlers

//go:generate mockgen -source=todo_update.go -destination=todo_update_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

// TodoUpdater defines the interface that the todo service must implement.
type TodoUpdater interface {
	UpdateTodo(ctx context.Context, id int64, content *string, hasCompleted *bool) (*models.Todo, error)
}

// UpdateTodoRequest represents the JSON body of a todo update.
// When both fields are sent only content is applied.
// swagger:model UpdateTodoRequest
type UpdateTodoRequest struct {
	// New text
	Content *string `json:"content,omitempty"`

	// New completion flag
	HasCompleted *bool `json:"hasCompleted,omitempty"`
}

// NewUpdateTodoHandler returns an HTTP handler for PATCH /todo/{id}.
// @Summary Update a todo
// @Description Replaces the content, or else sets the completion flag. Responds 204 when there is nothing to change
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo id"
// @Param request body handlers.UpdateTodoRequest true "Changes"
// @Success 200 {object} models.Todo "Updated todo"
// @Success 204 "Nothing to update"
// @Failure 400 {object} handlers.ErrorResponse "Invalid todo id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todo/{id} [patch]
func NewUpdateTodoHandler(svc TodoUpdater, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid todo id")
			return
		}

		var req UpdateTodoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if !authorize(w, r, authorizer, "") {
			return
		}

		todo, err := svc.UpdateTodo(r.Context(), id, req.Content, req.HasCompleted)
		if err != nil {
			if errors.Is(err, services.ErrTodoNotFound) {
				writeError(w, http.StatusNotFound, "Todo not found")
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to update todo", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if todo == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
