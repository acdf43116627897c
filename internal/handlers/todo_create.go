package handlers

//go:generate mockgen -source=todo_create.go -destination=todo_create_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jellydator/validation"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
)

// TodoCreator defines the interface that the todo service must implement.
type TodoCreator interface {
	AddTodo(ctx context.Context, username, content string) (*models.Todo, error)
}

// CreateTodoRequest represents the JSON body for todo creation
// swagger:model CreateTodoRequest
type CreateTodoRequest struct {
	// Owner username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Todo text
	// required: true
	// default: buy milk
	Content string `json:"content"`
}

// Validate checks that both fields are present.
func (r CreateTodoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Content, validation.Required),
	)
}

// NewCreateTodoHandler returns an HTTP handler that adds a todo for a user.
// @Summary Create a todo
// @Description Adds an incomplete todo for the named user and appends a snapshot of it
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body handlers.CreateTodoRequest true "Todo"
// @Success 200 {object} models.Todo "Created todo"
// @Failure 400 {object} handlers.ErrorResponse "Both username and content are required"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todo [post]
func NewCreateTodoHandler(svc TodoCreator, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTodoRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Both username and content are required")
			return
		}
		if !authorize(w, r, authorizer, req.Username) {
			return
		}

		todo, err := svc.AddTodo(r.Context(), req.Username, req.Content)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to add todo", "username", req.Username, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, todo)
	}
}
