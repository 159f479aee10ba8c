package delete_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels"
)

const (
	msgUnauthenticated = "требуется авторизация"
	msgHotelNotFound   = "отель не найден"
	msgAccessDenied    = "нет прав на удаление отеля"
	msgInvalidID       = "некорректный идентификатор"
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

// Handle DELETE /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	hotelID, err := handlers.PathID(r, "hotelId")
	if err != nil {
		h.logger.Warn("DELETE /hotels/{hotelId} - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), hotelID, guest.ID); err != nil {
		switch {
		case errors.Is(err, hotels.ErrHotelNotFound):
			h.logger.Warn("DELETE /hotels/{hotelId} - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, hotels.ErrAccessDenied):
			h.logger.Warn("DELETE /hotels/{hotelId} - Access denied: hotel_id=%s, user_id=%s", hotelID, guest.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /hotels/{hotelId} - Failed to delete hotel: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /hotels/{hotelId} - Hotel deleted: hotel_id=%s", hotelID)
	w.WriteHeader(http.StatusNoContent)
}
