package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HeritageService/internal/service/bookings"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/{id}", h.Handle).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	return w
}

func TestHandler_Handle(t *testing.T) {
	svc := &mockBookingService{}
	svc.On("Cancel", mock.Anything, "b-1").Return(nil)
	svc.On("Cancel", mock.Anything, "missing").Return(bookings.ErrBookingNotFound)

	h := NewHandler(svc, logger.NewNop())

	w := serve(h, "/api/bookings/b-1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Booking cancelled successfully"}`, w.Body.String())

	// повторная отмена
	w = serve(h, "/api/bookings/b-1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(h, "/api/bookings/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":404,"message":"Booking not found"}`, w.Body.String())
}
