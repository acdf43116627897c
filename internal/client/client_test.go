package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-list/internal/handlers"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// newServer answers every request with status and body and records what it received.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.EscapedPath()
		rec.Auth = r.Header.Get("Authorization")
		rec.Body = nil
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestTodoClient_Login(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"msg":"Login successful","user":{"id":1,"username":"alice","email":"a@x.com"},"token":"tok"}`)
	c := NewTodoClient(srv.URL)

	resp, err := c.Login(context.Background(), "alice", "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Msg)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "alice", c.Username())
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/login", rec.Path)
	assert.Equal(t, map[string]any{"username": "alice", "email": "a@x.com"}, rec.Body)

	// the token is sent on later calls
	_, _ = c.GetAllTodos(context.Background())
	assert.Equal(t, "Bearer tok", rec.Auth)
}

func TestTodoClient_LoginFailure(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, `{"msg":"Invalid username or email"}`)
	c := NewTodoClient(srv.URL)

	_, err := c.Login(context.Background(), "alice", "wrong")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Invalid username or email", apiErr.Msg)
	assert.Empty(t, c.Username())
}

func TestTodoClient_AddNewTodo(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"id":5,"user_id":1,"content":"buy milk","has_completed":false}`)
	c := NewTodoClient(srv.URL)

	_, err := c.AddNewTodo(context.Background(), "buy milk")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	c.username = "alice"
	todo, err := c.AddNewTodo(context.Background(), "buy milk")
	require.NoError(t, err)

	assert.Equal(t, &models.Todo{ID: 5, UserID: 1, Content: "buy milk"}, todo)
	assert.Equal(t, "/todo", rec.Path)
	assert.Equal(t, map[string]any{"username": "alice", "content": "buy milk"}, rec.Body)
}

func TestTodoClient_GetUserTodos(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `[{"id":1,"content":"a","has_completed":true,"username":"a b"}]`)
	c := NewTodoClient(srv.URL)

	todos, err := c.GetUserTodos(context.Background(), "a b")
	require.NoError(t, err)

	assert.Len(t, todos, 1)
	assert.Equal(t, "/todo/a%20b", rec.Path)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, map[string]any{"username": "a b"}, rec.Body)
}

func TestTodoClient_GetUserTodos_Slash(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := handlers.NewMockTodoGetter(ctrl)
	authorizer := handlers.NewMockAuthorizer(ctrl)

	todos := []models.Todo{{ID: 1, Content: "buy milk", Username: "a/b"}}
	authorizer.EXPECT().Authorize(gomock.Any(), "a/b").Return(nil)
	svc.EXPECT().ListUserTodos(gomock.Any(), "a/b").Return(todos, nil)

	r := chi.NewRouter()
	r.Get("/todo/{id}", handlers.NewGetTodoHandler(svc, authorizer))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	got, err := NewTodoClient(srv.URL).GetUserTodos(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, todos, got)
}

func TestTodoClient_GetUserTodos_NumericUsername(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `[]`)
	c := NewTodoClient(srv.URL)

	_, err := c.GetUserTodos(context.Background(), "123")
	assert.ErrorIs(t, err, ErrNumericUsername)
	assert.Empty(t, rec.Method)
}

func TestTodoClient_GetTodoByID(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"id":7,"content":"x","has_completed":false,"username":"alice"}`)
	c := NewTodoClient(srv.URL)

	todo, err := c.GetTodoByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), todo.ID)
	assert.Equal(t, "/todo/7", rec.Path)
}

func TestTodoClient_UpdateTodo(t *testing.T) {
	t.Run("completed flag", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `{"id":5,"user_id":1,"content":"buy milk","has_completed":true}`)
		c := NewTodoClient(srv.URL)

		done := true
		todo, err := c.UpdateTodo(context.Background(), 5, nil, &done)
		require.NoError(t, err)

		assert.True(t, todo.HasCompleted)
		assert.Equal(t, http.MethodPatch, rec.Method)
		assert.Equal(t, map[string]any{"hasCompleted": true}, rec.Body)
	})

	t.Run("nothing to update", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusNoContent, "")
		c := NewTodoClient(srv.URL)

		todo, err := c.UpdateTodo(context.Background(), 5, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, todo)
	})
}

func TestTodoClient_RemoveTodo(t *testing.T) {
	srv, rec := newServer(t, http.StatusNotFound, `{"msg":"Todo not found"}`)
	c := NewTodoClient(srv.URL)

	_, err := c.RemoveTodo(context.Background(), 9)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Todo not found", apiErr.Msg)
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/todo/9", rec.Path)
}

func TestTodoClient_AddUser(t *testing.T) {
	srv, rec := newServer(t, http.StatusCreated, `{"id":2,"username":"bob","email":null}`)
	c := NewTodoClient(srv.URL)

	user, err := c.AddUser(context.Background(), "bob", nil)
	require.NoError(t, err)

	assert.Equal(t, &models.User{ID: 2, Username: "bob"}, user)
	assert.Equal(t, "/todo/useradd", rec.Path)
	assert.Equal(t, map[string]any{"username": "bob"}, rec.Body)
}

func TestTodoClient_Unreachable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `[]`)
	srv.Close()
	c := NewTodoClient(srv.URL)

	_, err := c.GetAllTodos(context.Background())
	assert.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
