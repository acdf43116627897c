package handlers

//go:generate mockgen -source=todo_list.go -destination=todo_list_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// TodoLister defines the interface that the todo service must implement.
type TodoLister interface {
	ListTodos(ctx context.Context) ([]models.Todo, error)
}

// NewListTodosHandler returns an HTTP handler listing every todo of every user.
// @Summary List all todos
// @Description Returns all todos joined with their owner's username
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Todo "Todos"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todo [get]
func NewListTodosHandler(svc TodoLister, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorize(w, r, authorizer, "") {
			return
		}

		todos, err := svc.ListTodos(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to list todos", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, todos)
	}
}
