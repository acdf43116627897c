package handlers

//go:generate mockgen -source=authorizer.go -destination=authorizer_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-todo-list/internal/authz"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
)

// Authorizer decides whether the request may act on behalf of username.
// An empty username asks only whether the caller may use the API at all.
type Authorizer interface {
	Authorize(ctx context.Context, username string) error
}

// authorize writes a 401 or 403 response and returns false when the request is not allowed.
func authorize(w http.ResponseWriter, r *http.Request, a Authorizer, username string) bool {
	err := a.Authorize(r.Context(), username)
	if err == nil {
		return true
	}

	logger.FromContext(r.Context()).Warnw("request not authorized", "username", username, "error", err)
	switch {
	case errors.Is(err, authz.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	default:
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return false
}
