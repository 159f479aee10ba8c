package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *mux.Router {
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	// Без заголовка Authorization запрос отклоняется
	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	r := mux.NewRouter()
	registerRoutes(r.PathPrefix("/api/v1").Subrouter(), auth, routes{
		searchHotels:      ok,
		getHotel:          ok,
		checkAvailability: ok,
		getRoomBookings:   ok,
		checkout:          ok,
		confirmPayment:    ok,
		deleteBooking:     ok,
		getUserBookings:   ok,
		getOwnerBookings:  ok,
		getOwnerHotels:    ok,
		createHotel:       ok,
		updateHotel:       ok,
		deleteHotel:       ok,
		createRoom:        ok,
		updateRoom:        ok,
		deleteRoom:        ok,
	})
	return r
}

func TestRegisterRoutes_Auth(t *testing.T) {
	const id = "6b1f3c2a-8d4e-4f7a-9c5b-1e2d3f4a5b6c"

	tests := []struct {
		method    string
		path      string
		protected bool
	}{
		{method: http.MethodGet, path: "/api/v1/hotels"},
		{method: http.MethodGet, path: "/api/v1/hotels/" + id},
		{method: http.MethodGet, path: "/api/v1/rooms/" + id + "/availability"},
		{method: http.MethodGet, path: "/api/v1/rooms/" + id + "/bookings", protected: true},
		{method: http.MethodPost, path: "/api/v1/checkout", protected: true},
		{method: http.MethodPatch, path: "/api/v1/bookings/payment/pi_1", protected: true},
		{method: http.MethodDelete, path: "/api/v1/bookings/" + id, protected: true},
		{method: http.MethodGet, path: "/api/v1/me/bookings", protected: true},
		{method: http.MethodGet, path: "/api/v1/me/hotel-bookings", protected: true},
		{method: http.MethodGet, path: "/api/v1/me/hotels", protected: true},
		{method: http.MethodPost, path: "/api/v1/hotels", protected: true},
		{method: http.MethodPatch, path: "/api/v1/hotels/" + id, protected: true},
		{method: http.MethodDelete, path: "/api/v1/hotels/" + id, protected: true},
		{method: http.MethodPost, path: "/api/v1/hotels/" + id + "/rooms", protected: true},
		{method: http.MethodPatch, path: "/api/v1/rooms/" + id, protected: true},
		{method: http.MethodDelete, path: "/api/v1/rooms/" + id, protected: true},
	}

	r := newTestRouter()

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			anonymous := httptest.NewRecorder()
			r.ServeHTTP(anonymous, httptest.NewRequest(tt.method, tt.path, nil))

			authorized := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "Bearer token")
			r.ServeHTTP(authorized, req)

			assert.Equal(t, http.StatusOK, authorized.Code)
			if tt.protected {
				assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
			} else {
				assert.Equal(t, http.StatusOK, anonymous.Code)
			}
		})
	}
}
