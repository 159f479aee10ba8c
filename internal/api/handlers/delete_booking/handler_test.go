package delete_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

type fakeService struct {
	bookingID string
	userID    string
	err       error
}

func (f *fakeService) Delete(_ context.Context, bookingID, userID string) error {
	f.bookingID = bookingID
	f.userID = userID
	return f.err
}

const bookingID = "2c9a7e41-6f3b-4d8a-b5e2-7a1c9f0d3e84"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, withGuest bool) *httptest.ResponseRecorder {
	return serveID(svc, bookingID, withGuest)
}

func serveID(svc *fakeService, id string, withGuest bool) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+id, nil)
	if withGuest {
		req = req.WithContext(middleware.WithGuest(req.Context(), domain.Guest{ID: "owner-1"}))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name      string
		withGuest bool
		err       error
		want      int
	}{
		{name: "deleted", withGuest: true, want: http.StatusNoContent},
		{name: "no guest", withGuest: false, want: http.StatusUnauthorized},
		{name: "not found", withGuest: true, err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "access denied", withGuest: true, err: bookings.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", withGuest: true, err: fmt.Errorf("%w: Delete - repository error: boom", bookings.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.withGuest)

			assert.Equal(t, tt.want, rec.Code)
			if tt.withGuest {
				assert.Equal(t, bookingID, svc.bookingID)
				assert.Equal(t, "owner-1", svc.userID)
			}
		})
	}
}

func TestHandle_MalformedBookingID(t *testing.T) {
	svc := &fakeService{}
	rec := serveID(svc, "b1", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.bookingID, "service is not called")
}
