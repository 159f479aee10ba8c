package get_owner_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
)

const (
	msgUnauthenticated = "требуется авторизация"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/hotel-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.GetOwnerBookings(r.Context(), guest.ID)
	if err != nil {
		h.logger.Error("GET /me/hotel-bookings - Failed to get bookings: user_id=%s, error=%v", guest.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/hotel-bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		guest.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
