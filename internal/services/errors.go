package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or email")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrTodoNotFound       = errors.New("todo not found")
	ErrNoTodosForUser     = errors.New("no todos found for this user")
)
