// Package authz decides whether a request may act on behalf of a username.
//
// Most routes take the acting username from the request itself. FieldAuthorizer
// keeps that contract and trusts the caller; TokenAuthorizer requires the
// username to match the claims of the bearer token validated by
// middlewares.AuthMiddleware.
package authz

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-todo-list/internal/jwt"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// FieldAuthorizer trusts the username supplied by the caller.
type FieldAuthorizer struct{}

func NewFieldAuthorizer() *FieldAuthorizer {
	return &FieldAuthorizer{}
}

// Authorize always allows the request.
func (a *FieldAuthorizer) Authorize(ctx context.Context, username string) error {
	return nil
}

// TokenAuthorizer matches the username against the token claims stored in the context.
type TokenAuthorizer struct{}

func NewTokenAuthorizer() *TokenAuthorizer {
	return &TokenAuthorizer{}
}

// Authorize fails with ErrUnauthenticated when no claims are present and with
// ErrForbidden when username names someone else. An empty username only
// requires authentication.
func (a *TokenAuthorizer) Authorize(ctx context.Context, username string) error {
	claims := jwt.ClaimsFromContext(ctx)
	if claims == nil {
		return ErrUnauthenticated
	}
	if username != "" && claims.Username != username {
		return ErrForbidden
	}
	return nil
}
