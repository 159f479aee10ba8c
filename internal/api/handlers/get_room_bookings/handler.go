package get_room_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
)

const (
	msgRoomNotFound = "номер не найден"
	msgInvalidID    = "некорректный идентификатор"
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

// Handle GET /api/v1/rooms/{roomId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId}/bookings - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetRoomBookedDates(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, bookings.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{roomId}/bookings - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/{roomId}/bookings - Failed to get booked dates: room_id=%s, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/{roomId}/bookings - room_id=%s, ranges=%d", roomID, len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, result)
}
