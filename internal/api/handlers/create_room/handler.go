package create_room

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
	msgHotelNotFound      = "отель не найден"
	msgAccessDenied       = "нет прав на добавление номеров в отель"
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

// Handle POST /api/v1/hotels/{hotelId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	hotelID, err := handlers.PathID(r, "hotelId")
	if err != nil {
		h.logger.Warn("POST /hotels/{hotelId}/rooms - Invalid hotel id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{hotelId}/rooms - Invalid request body: hotel_id=%s, error=%v", hotelID, err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), hotelID, guest.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrHotelNotFound):
			h.logger.Warn("POST /hotels/{hotelId}/rooms - Hotel not found: hotel_id=%s", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /hotels/{hotelId}/rooms - Access denied: hotel_id=%s, user_id=%s", hotelID, guest.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /hotels/{hotelId}/rooms - Failed to create room: hotel_id=%s, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{hotelId}/rooms - Room created successfully: room_id=%s, hotel_id=%s", result.ID, hotelID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
