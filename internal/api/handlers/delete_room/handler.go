package delete_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms"
)

const (
	msgUnauthenticated = "требуется авторизация"
	msgRoomNotFound    = "номер не найден"
	msgAccessDenied    = "нет прав на удаление номера"
	msgInvalidID       = "некорректный идентификатор"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{roomId} - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), roomID, guest.ID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound), errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("DELETE /rooms/{roomId} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/{roomId} - Access denied: room_id=%s, user_id=%s", roomID, guest.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /rooms/{roomId} - Failed to delete room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{roomId} - Room deleted: room_id=%s", roomID)
	w.WriteHeader(http.StatusNoContent)
}
