package get_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels"
)

const (
	msgHotelNotFound = "отель не найден"
	msgInvalidID     = "некорректный идентификатор"
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

// Handle GET /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathID(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{hotelId} - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), hotelID)
	if err != nil {
		if errors.Is(err, hotels.ErrHotelNotFound) {
			h.logger.Warn("GET /hotels/{hotelId} - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)
			return
		}
		h.logger.Error("GET /hotels/{hotelId} - Failed to get hotel: hotel_id=%s, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
