package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

// ErrNotLoggedIn is returned by calls that need the username stored at login.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrNumericUsername is returned when listing a username made only of digits.
var ErrNumericUsername = errors.New("usernames made only of digits cannot be listed")

// APIError is a non-2xx response from the todo API.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todo api: %d %s", e.Status, e.Msg)
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Msg   string      `json:"msg"`
	User  models.User `json:"user"`
	Token string      `json:"token,omitempty"`
}

// TodoClient talks to the todo API over HTTP.
// It remembers the username (and token, if any) of the last successful login.
type TodoClient struct {
	baseURL  string
	http     *http.Client
	username string
	token    string
}

// Opt configures a TodoClient.
type Opt func(*TodoClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Opt {
	return func(tc *TodoClient) {
		tc.http = c
	}
}

// NewTodoClient creates a client for the API rooted at baseURL, e.g. http://localhost:8080.
func NewTodoClient(baseURL string, opts ...Opt) *TodoClient {
	c := &TodoClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Username returns the username stored by the last successful Login.
func (c *TodoClient) Username() string {
	return c.username
}

func (c *TodoClient) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("todo api request failed", "method", method, "path", path, "error", err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var e struct {
			Msg string `json:"msg"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		apiErr := &APIError{Status: resp.StatusCode, Msg: e.Msg}
		logger.Log.Errorw("todo api error", "method", method, "path", path, "status", resp.StatusCode, "msg", e.Msg)
		return resp.StatusCode, apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logger.Log.Errorw("failed to decode todo api response", "method", method, "path", path, "error", err)
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Login checks the credentials and stores the username for later calls.
func (c *TodoClient) Login(ctx context.Context, username, email string) (*LoginResponse, error) {
	var resp LoginResponse
	body := map[string]string{"username": username, "email": email}
	if _, err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}

	c.username = username
	c.token = resp.Token
	return &resp, nil
}

// AddUser creates a user. email may be nil.
func (c *TodoClient) AddUser(ctx context.Context, username string, email *string) (*models.User, error) {
	var user models.User
	body := struct {
		Username string  `json:"username"`
		Email    *string `json:"email,omitempty"`
	}{username, email}
	if _, err := c.do(ctx, http.MethodPost, "/todo/useradd", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllTodos lists every user's todos.
func (c *TodoClient) GetAllTodos(ctx context.Context) ([]models.Todo, error) {
	var todos []models.Todo
	if _, err := c.do(ctx, http.MethodGet, "/todo", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetUserTodos lists the todos of username.
// The username also travels in the body, which the server prefers over the path.
// All-digit usernames are rejected: the server reads such a path as a todo id.
func (c *TodoClient) GetUserTodos(ctx context.Context, username string) ([]models.Todo, error) {
	if isDigits(username) {
		logger.Log.Errorw("cannot list user todos", "username", username, "error", ErrNumericUsername)
		return nil, ErrNumericUsername
	}

	var todos []models.Todo
	body := map[string]string{"username": username}
	if _, err := c.do(ctx, http.MethodGet, "/todo/"+url.PathEscape(username), body, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTodoByID fetches one todo.
func (c *TodoClient) GetTodoByID(ctx context.Context, id int64) (*models.Todo, error) {
	var todo models.Todo
	if _, err := c.do(ctx, http.MethodGet, todoPath(id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// AddNewTodo creates a todo owned by the logged-in user.
func (c *TodoClient) AddNewTodo(ctx context.Context, content string) (*models.Todo, error) {
	if c.username == "" {
		logger.Log.Errorw("cannot add todo", "error", ErrNotLoggedIn)
		return nil, ErrNotLoggedIn
	}

	var todo models.Todo
	body := map[string]string{"username": c.username, "content": content}
	if _, err := c.do(ctx, http.MethodPost, "/todo", body, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// RemoveTodo deletes a todo and returns the deleted row.
func (c *TodoClient) RemoveTodo(ctx context.Context, id int64) (*models.Todo, error) {
	var todo models.Todo
	if _, err := c.do(ctx, http.MethodDelete, todoPath(id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo changes the content or the completion flag of a todo.
// It returns nil and no error when the server had nothing to update.
func (c *TodoClient) UpdateTodo(ctx context.Context, id int64, content *string, hasCompleted *bool) (*models.Todo, error) {
	var todo models.Todo
	body := struct {
		Content      *string `json:"content,omitempty"`
		HasCompleted *bool   `json:"hasCompleted,omitempty"`
	}{content, hasCompleted}

	status, err := c.do(ctx, http.MethodPatch, todoPath(id), body, &todo)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return &todo, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func todoPath(id int64) string {
	return "/todo/" + strconv.FormatInt(id, 10)
}
