package list_monasteries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type mockMonasteryService struct {
	mock.Mock
}

func (m *mockMonasteryService) List(ctx context.Context, filter domain.MonasteryFilter) ([]models.MonasteryResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MonasteryResponse), args.Error(1)
}

func TestHandler_Handle_PassesFilter(t *testing.T) {
	svc := &mockMonasteryService{}
	svc.On("List", mock.Anything, domain.MonasteryFilter{District: "west", Search: "lake"}).
		Return([]models.MonasteryResponse{{ID: "m-1", Name: "Khecheopalri Monastery"}}, nil)

	h := NewHandler(svc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/monasteries?district=west&search=lake", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Khecheopalri Monastery")
	svc.AssertExpectations(t)
}

func TestHandler_Handle_EmptyList(t *testing.T) {
	svc := &mockMonasteryService{}
	svc.On("List", mock.Anything, domain.MonasteryFilter{}).Return([]models.MonasteryResponse{}, nil)

	h := NewHandler(svc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/monasteries", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
