package get_owner_hotels

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
)

const (
	msgUnauthenticated = "требуется авторизация"
)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/hotels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	result, err := h.service.GetOwnerHotels(r.Context(), guest.ID)
	if err != nil {
		h.logger.Error("GET /me/hotels - Failed to get hotels: user_id=%s, error=%v", guest.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/hotels - Hotels retrieved successfully: user_id=%s, count=%d", guest.ID, len(result.Hotels))
	handlers.RespondJSON(w, http.StatusOK, result.Hotels)
}
