package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
	"github.com/sbilibin2017/gw-todo-list/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTodoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTodoUpdater(ctrl)
	mockAuthz := NewMockAuthorizer(ctrl)
	mockAuthz.EXPECT().Authorize(gomock.Any(), "").AnyTimes().Return(nil)
	handler := NewUpdateTodoHandler(mockSvc, mockAuthz)

	content := "buy oat milk"
	done := true

	tests := []struct {
		name           string
		id             string
		reqBody        any
		mockSetup      func()
		expectedStatus int
		expectedTodo   *models.Todo
		expectedMsg    string
	}{
		{
			name:    "set completed",
			id:      "5",
			reqBody: map[string]bool{"hasCompleted": true},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateTodo(gomock.Any(), int64(5), nil, &done).
					Return(&models.Todo{ID: 5, UserID: 1, Content: "buy milk", HasCompleted: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTodo:   &models.Todo{ID: 5, UserID: 1, Content: "buy milk", HasCompleted: true},
		},
		{
			name:    "replace content",
			id:      "5",
			reqBody: UpdateTodoRequest{Content: &content},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateTodo(gomock.Any(), int64(5), &content, nil).
					Return(&models.Todo{ID: 5, UserID: 1, Content: content}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTodo:   &models.Todo{ID: 5, UserID: 1, Content: content},
		},
		{
			name:    "nothing to update",
			id:      "5",
			reqBody: map[string]string{},
			mockSetup: func() {
				mockSvc.EXPECT().UpdateTodo(gomock.Any(), int64(5), nil, nil).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "empty body",
			id:   "5",
			mockSetup: func() {
				mockSvc.EXPECT().UpdateTodo(gomock.Any(), int64(5), nil, nil).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "non numeric id",
			id:             "abc",
			reqBody:        map[string]bool{"hasCompleted": true},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid todo id",
		},
		{
			name:           "invalid json",
			id:             "5",
			reqBody:        "[",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request body",
		},
		{
			name:    "unknown id",
			id:      "404",
			reqBody: map[string]bool{"hasCompleted": false},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateTodo(gomock.Any(), int64(404), nil, gomock.Any()).
					Return(nil, services.ErrTodoNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Todo not found",
		},
		{
			name:    "store failure",
			id:      "5",
			reqBody: UpdateTodoRequest{Content: &content},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateTodo(gomock.Any(), int64(5), &content, nil).
					Return(nil, errors.New("update failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "update failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, newRequest(http.MethodPatch, "/todo/"+tt.id, tt.reqBody, map[string]string{"id": tt.id}))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			switch {
			case tt.expectedTodo != nil:
				var got models.Todo
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *tt.expectedTodo, got)
			case tt.expectedStatus == http.StatusNoContent:
				assert.Empty(t, rec.Body.Bytes())
			default:
				assert.Equal(t, tt.expectedMsg, decodeError(t, rec).Msg)
			}
		})
	}
}
