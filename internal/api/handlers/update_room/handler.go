package update_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/service/rooms/models"
)

const (
	msgUnauthenticated    = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "номер не найден"
	msgAccessDenied       = "нет прав на изменение номера"
	msgInvalidID          = "некорректный идентификатор"
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

// Handle PATCH /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("PATCH /rooms/{roomId} - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{roomId} - Invalid request body: room_id=%s, error=%v", roomID, err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), roomID, guest.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound), errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("PATCH /rooms/{roomId} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("PATCH /rooms/{roomId} - Access denied: room_id=%s, user_id=%s", roomID, guest.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /rooms/{roomId} - Failed to update room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{roomId} - Room updated successfully: room_id=%s", roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
