package confirm_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	confirmPayment "github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_payment"
)

type fakeUseCase struct {
	got  *confirmPayment.Request
	resp *confirmPayment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/payment/{paymentIntentId}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, path, nil))
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	uc := &fakeUseCase{resp: &confirmPayment.Response{
		Booking: &domain.Booking{ID: "b1", PaymentIntentID: "pi_1", PaymentStatus: true},
	}}

	rec := serve(uc, "/api/v1/bookings/payment/pi_1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pi_1", uc.got.PaymentIntentID)

	var resp ConfirmPaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Booking.PaymentStatus)
	assert.False(t, resp.AlreadyPaid)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: confirmPayment.ErrInvalidInput, want: http.StatusBadRequest},
		{err: confirmPayment.ErrBookingNotFound, want: http.StatusNotFound},
		{err: confirmPayment.ErrPaymentNotCompleted, want: http.StatusConflict},
		{err: confirmPayment.ErrPaymentProvider, want: http.StatusBadGateway},
		{err: confirmPayment.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, "/api/v1/bookings/payment/pi_1")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
