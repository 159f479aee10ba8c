package update_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

const (
	msgUnauthenticated    = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHotelNotFound      = "отель не найден"
	msgAccessDenied       = "нет прав на изменение отеля"
	msgInvalidID          = "некорректный идентификатор"
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

// Handle PATCH /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	hotelID, err := handlers.PathID(r, "hotelId")
	if err != nil {
		h.logger.Warn("PATCH /hotels/{hotelId} - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateHotelRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /hotels/{hotelId} - Invalid request body: hotel_id=%s, error=%v", hotelID, err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), hotelID, guest.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, hotels.ErrHotelNotFound):
			h.logger.Warn("PATCH /hotels/{hotelId} - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, hotels.ErrAccessDenied):
			h.logger.Warn("PATCH /hotels/{hotelId} - Access denied: hotel_id=%s, user_id=%s", hotelID, guest.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /hotels/{hotelId} - Failed to update hotel: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /hotels/{hotelId} - Hotel updated successfully: hotel_id=%s", hotelID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
