package handlers

//go:generate mockgen -source=user_add.go -destination=user_add_mock.go -package=handlers

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

// UserAdder defines the interface that the user service must implement.
type UserAdder interface {
	AddUser(ctx context.Context, username string, email *string) (*models.User, error)
}

// AddUserRequest represents the JSON body for user creation
// swagger:model AddUserRequest
type AddUserRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email, needed to log in later
	// default: a@x.com
	Email *string `json:"email,omitempty"`
}

// Validate checks that the username is present.
func (r AddUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
	)
}

// NewAddUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a user with a unique username
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.AddUserRequest true "User"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Username is required"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /todo/useradd [post]
func NewAddUserHandler(svc UserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Username is required")
			return
		}

		user, err := svc.AddUser(r.Context(), req.Username, req.Email)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusConflict, "Username already exists")
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to add user", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}
