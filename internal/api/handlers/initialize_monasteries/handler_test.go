package initialize_monasteries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	initializeMonasteries "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_monasteries"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *initializeMonasteries.Request) (*initializeMonasteries.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*initializeMonasteries.Response), args.Error(1)
}

func TestHandler_Handle_Force(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &initializeMonasteries.Request{Force: true}).Return(&initializeMonasteries.Response{
		Message:     "Successfully initialized 6 Sikkim monasteries",
		Count:       6,
		Initialized: true,
	}, nil)

	h := NewHandler(uc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/monasteries/initialize?force=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully initialized 6 Sikkim monasteries","count":6,"initialized":true}`, w.Body.String())
}

func TestHandler_Handle_InvalidForce(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/monasteries/initialize?force=maybe", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_Handle_Failure(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &initializeMonasteries.Request{}).Return(nil, errors.New("insert failed"))

	h := NewHandler(uc, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/monasteries/initialize", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "insert failed")
}
