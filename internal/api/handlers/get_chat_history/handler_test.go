package get_chat_history

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HeritageService/internal/service/chat"
	"github.com/m04kA/SMC-HeritageService/internal/service/chat/models"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) History(ctx context.Context, sessionID string, limit int) (*models.ChatHistoryResponse, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatHistoryResponse), args.Error(1)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/chat/history/{session_id}", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_Handle_DefaultLimit(t *testing.T) {
	svc := &mockChatService{}
	svc.On("History", mock.Anything, "s-1", 20).
		Return(&models.ChatHistoryResponse{Messages: []models.ChatMessageResponse{}, SessionID: "s-1"}, nil)

	w := serve(NewHandler(svc, logger.NewNop()), "/api/chat/history/s-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":[],"session_id":"s-1"}`, w.Body.String())
}

func TestHandler_Handle_InvalidLimit(t *testing.T) {
	svc := &mockChatService{}
	svc.On("History", mock.Anything, "s-1", 0).Return(nil, fmt.Errorf("%w: limit=0", chat.ErrInvalidLimit))

	h := NewHandler(svc, logger.NewNop())

	w := serve(h, "/api/chat/history/s-1?limit=0")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(h, "/api/chat/history/s-1?limit=abc")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
