package create_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

const (
	msgUnauthenticated    = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/hotels
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req models.CreateHotelRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /hotels - Invalid request body: user_id=%s, error=%v", guest.ID, err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), guest.ID, &req)
	if err != nil {
		h.logger.Error("POST /hotels - Failed to create hotel: user_id=%s, error=%v", guest.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /hotels - Hotel created successfully: hotel_id=%s, user_id=%s", result.ID, guest.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
