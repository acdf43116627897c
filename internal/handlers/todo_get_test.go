package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-list/internal/authz"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTodoHandler_ByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTodoGetter(ctrl)
	mockAuthz := NewMockAuthorizer(ctrl)
	handler := NewGetTodoHandler(mockSvc, mockAuthz)

	t.Run("found", func(t *testing.T) {
		todo := &models.Todo{ID: 5, Content: "buy milk", Username: "alice"}
		mockAuthz.EXPECT().Authorize(gomock.Any(), "").Return(nil)
		mockSvc.EXPECT().GetTodo(gomock.Any(), int64(5)).Return(todo, nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(http.MethodGet, "/todo/5", nil, map[string]string{"id": "5"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got models.Todo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *todo, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockAuthz.EXPECT().Authorize(gomock.Any(), "").Return(nil)
		mockSvc.EXPECT().GetTodo(gomock.Any(), int64(9)).Return(nil, services.ErrTodoNotFound)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(http.MethodGet, "/todo/9", nil, map[string]string{"id": "9"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Todo not found", decodeError(t, rec).Msg)
	})

	t.Run("id overflow", func(t *testing.T) {
		key := "99999999999999999999"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(http.MethodGet, "/todo/"+key, nil, map[string]string{"id": key}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTodoHandler_ByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTodoGetter(ctrl)
	mockAuthz := NewMockAuthorizer(ctrl)
	handler := NewGetTodoHandler(mockSvc, mockAuthz)

	todos := []models.Todo{{ID: 1, Content: "buy milk", Username: "alice"}}

	tests := []struct {
		name           string
		key            string
		reqBody        any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "path username",
			key:  "alice",
			mockSetup: func() {
				mockAuthz.EXPECT().Authorize(gomock.Any(), "alice").Return(nil)
				mockSvc.EXPECT().ListUserTodos(gomock.Any(), "alice").Return(todos, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "body username wins",
			key:     "someone",
			reqBody: UserTodosRequest{Username: "alice"},
			mockSetup: func() {
				mockAuthz.EXPECT().Authorize(gomock.Any(), "alice").Return(nil)
				mockSvc.EXPECT().ListUserTodos(gomock.Any(), "alice").Return(todos, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "malformed body falls back to path",
			key:     "alice",
			reqBody: "{oops",
			mockSetup: func() {
				mockAuthz.EXPECT().Authorize(gomock.Any(), "alice").Return(nil)
				mockSvc.EXPECT().ListUserTodos(gomock.Any(), "alice").Return(todos, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty username",
			key:            "",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Username is required",
		},
		{
			name: "no todos",
			key:  "carol",
			mockSetup: func() {
				mockAuthz.EXPECT().Authorize(gomock.Any(), "carol").Return(nil)
				mockSvc.EXPECT().ListUserTodos(gomock.Any(), "carol").Return(nil, services.ErrNoTodosForUser)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "No todos found for this user",
		},
		{
			name: "forbidden",
			key:  "bob",
			mockSetup: func() {
				mockAuthz.EXPECT().Authorize(gomock.Any(), "bob").Return(authz.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "Forbidden",
		},
		{
			name: "store failure",
			key:  "alice",
			mockSetup: func() {
				mockAuthz.EXPECT().Authorize(gomock.Any(), "alice").Return(nil)
				mockSvc.EXPECT().ListUserTodos(gomock.Any(), "alice").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequest(http.MethodGet, "/todo/"+tt.key, tt.reqBody, map[string]string{"id": tt.key}))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []models.Todo
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, todos, got)
				return
			}
			assert.Equal(t, tt.expectedMsg, decodeError(t, rec).Msg)
		})
	}
}

func TestGetTodoHandler_EscapedUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTodoGetter(ctrl)
	mockAuthz := NewMockAuthorizer(ctrl)

	r := chi.NewRouter()
	r.Get("/todo/{id}", NewGetTodoHandler(mockSvc, mockAuthz))

	t.Run("slash in path username", func(t *testing.T) {
		todos := []models.Todo{{ID: 1, Content: "x", Username: "a/b"}}
		mockAuthz.EXPECT().Authorize(gomock.Any(), "a/b").Return(nil)
		mockSvc.EXPECT().ListUserTodos(gomock.Any(), "a/b").Return(todos, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todo/a%2Fb", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []models.Todo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, todos, got)
	})

	t.Run("escaped digits are an id", func(t *testing.T) {
		mockAuthz.EXPECT().Authorize(gomock.Any(), "").Return(nil)
		mockSvc.EXPECT().GetTodo(gomock.Any(), int64(12)).Return(&models.Todo{ID: 12}, nil)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todo/%31%32", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad percent encoding", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler := NewGetTodoHandler(mockSvc, mockAuthz)
		handler.ServeHTTP(rec, newRequest(http.MethodGet, "/todo/x", nil, map[string]string{"id": "%zz"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid path segment", decodeError(t, rec).Msg)
	})
}
