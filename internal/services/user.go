package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/repositories"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameAndEmail(ctx context.Context, username, email string) (*models.User, error)
	GetIDByUsername(ctx context.Context, username string) (*int64, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, email *string) (*models.User, error)
}

// TokenGenerator issues access tokens for logged-in users.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// UserService handles login and user creation.
type UserService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewUserService creates a new UserService. tokens may be nil, in which case
// Login returns an empty token.
func NewUserService(reader UserReader, writer UserWriter, tokens TokenGenerator) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Login checks that a user with both username and email exists.
func (svc *UserService) Login(ctx context.Context, username, email string) (*models.User, string, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsernameAndEmail(ctx, username, email)
	if err != nil {
		log.Errorw("failed to get user", "username", username, "error", err)
		return nil, "", err
	}
	if user == nil {
		log.Warnw("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	if svc.tokens == nil {
		return user, "", nil
	}

	token, err := svc.tokens.Generate(ctx, user.Username)
	if err != nil {
		log.Errorw("failed to generate token", "username", username, "error", err)
		return nil, "", err
	}
	return user, token, nil
}

// AddUser creates a user with a unique username.
func (svc *UserService) AddUser(ctx context.Context, username string, email *string) (*models.User, error) {
	log := logger.FromContext(ctx)

	id, err := svc.reader.GetIDByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to check user exists", "username", username, "error", err)
		return nil, err
	}
	if id != nil {
		log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	user, err := svc.writer.Save(ctx, username, email)
	if err != nil {
		// A concurrent insert can win between the check and the insert.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			log.Warnw("user already exists", "username", username)
			return nil, ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "username", username, "error", err)
		return nil, err
	}

	log.Infow("user created", "username", user.Username, "id", user.ID)
	return user, nil
}
