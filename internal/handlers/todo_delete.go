package handlers

//go:generate mockgen -source=todo_delete.go -destination=todo_delete_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

// TodoDeleter defines the interface that the todo service must implement.
type TodoDeleter interface {
	DeleteTodo(ctx context.Context, id int64) (*models.Todo, error)
}

// NewDeleteTodoHandler returns an HTTP handler for DELETE /todo/{id}.
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo id"
// @Success 200 {object} models.Todo "Deleted todo"
// @Failure 400 {object} handlers.ErrorResponse "Invalid todo id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Todo not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todo/{id} [delete]
func NewDeleteTodoHandler(svc TodoDeleter, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid todo id")
			return
		}
		if !authorize(w, r, authorizer, "") {
			return
		}

		todo, err := svc.DeleteTodo(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTodoNotFound) {
				writeError(w, http.StatusNotFound, "Todo not found")
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to delete todo", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
