package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, email string) (*models.User, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: a@x.com
	Email string `json:"email"`
}

// Validate checks that both fields are present.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Email, validation.Required),
	)
}

// LoginUser is the user part of a successful login response
// swagger:model LoginUser
type LoginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Msg string `json:"msg"`

	// Logged-in user
	User LoginUser `json:"user"`

	// Bearer token, only issued when token authorization is enabled
	Token string `json:"token,omitempty"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks that a user with the given username and email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Username and email are required"
// @Failure 404 {object} handlers.ErrorResponse "Invalid username or email"
// @Failure 500 {object} handlers.ErrorResponse "Server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "Username and email are required")
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username, req.Email)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusNotFound, "Invalid username or email")
				return
			}
			logger.FromContext(r.Context()).Errorw("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Msg: "Server error", Error: err.Error()})
			return
		}

		resp := LoginResponse{
			Msg: "Login successful",
			User: LoginUser{
				ID:       user.ID,
				Username: user.Username,
				Email:    req.Email,
			},
			Token: token,
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
