package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routes обработчики API
type routes struct {
	searchHotels      http.HandlerFunc
	getHotel          http.HandlerFunc
	checkAvailability http.HandlerFunc

	getRoomBookings  http.HandlerFunc
	checkout         http.HandlerFunc
	confirmPayment   http.HandlerFunc
	deleteBooking    http.HandlerFunc
	getUserBookings  http.HandlerFunc
	getOwnerBookings http.HandlerFunc

	getOwnerHotels http.HandlerFunc
	createHotel    http.HandlerFunc
	updateHotel    http.HandlerFunc
	deleteHotel    http.HandlerFunc
	createRoom     http.HandlerFunc
	updateRoom     http.HandlerFunc
	deleteRoom     http.HandlerFunc
}

// registerRoutes регистрирует маршруты под api; auth оборачивает защищенные маршруты
func registerRoutes(api *mux.Router, auth mux.MiddlewareFunc, h routes) {
	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/hotels", h.searchHotels).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}", h.getHotel).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", h.checkAvailability).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth)

	// --- Бронирования ---
	// Занятые даты номера для календаря
	protected.HandleFunc("/rooms/{roomId}/bookings", h.getRoomBookings).Methods(http.MethodGet)
	protected.HandleFunc("/checkout", h.checkout).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/payment/{paymentIntentId}", h.confirmPayment).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", h.deleteBooking).Methods(http.MethodDelete)
	protected.HandleFunc("/me/bookings", h.getUserBookings).Methods(http.MethodGet)
	protected.HandleFunc("/me/hotel-bookings", h.getOwnerBookings).Methods(http.MethodGet)

	// --- Управление отелями (для владельцев) ---
	protected.HandleFunc("/me/hotels", h.getOwnerHotels).Methods(http.MethodGet)
	protected.HandleFunc("/hotels", h.createHotel).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}", h.updateHotel).Methods(http.MethodPatch)
	protected.HandleFunc("/hotels/{hotelId}", h.deleteHotel).Methods(http.MethodDelete)
	protected.HandleFunc("/hotels/{hotelId}/rooms", h.createRoom).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", h.updateRoom).Methods(http.MethodPatch)
	protected.HandleFunc("/rooms/{roomId}", h.deleteRoom).Methods(http.MethodDelete)
}
