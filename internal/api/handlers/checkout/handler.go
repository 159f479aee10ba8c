package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	checkoutUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/checkout"
)

const (
	msgUnauthenticated       = "требуется авторизация"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBooking        = "некорректные данные бронирования"
	msgRoomNotFound          = "номер не найден"
	msgHotelNotFound         = "отель не найден"
	msgPaymentIntentNotFound = "платежное намерение не найдено"
	msgDatesUnavailable      = "номер уже забронирован на выбранные даты"
	msgAlreadyPaid           = "бронирование уже оплачено"
	msgPaymentProvider       = "платежный провайдер недоступен"
	msgRoomBusy              = "номер бронируется параллельно, повторите попытку"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guest, ok := middleware.GuestFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout - No guest in context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	var req CheckoutRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: user_id=%s, error=%v", guest.ID, err)
		if errors.Is(err, handlers.ErrValidation) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(guest)
	if err != nil {
		h.logger.Warn("POST /checkout - Failed to parse dates: user_id=%s, error=%v", guest.ID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrUnauthenticated):
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, checkoutUC.ErrInvalidInput):
			h.logger.Warn("POST /checkout - Invalid booking: user_id=%s, error=%v", guest.ID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, checkoutUC.ErrRoomNotFound):
			h.logger.Warn("POST /checkout - Room not found: room_id=%s, hotel_id=%s", req.Booking.RoomID, req.Booking.HotelID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkoutUC.ErrHotelNotFound):
			h.logger.Warn("POST /checkout - Hotel not found: hotel_id=%s", req.Booking.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, checkoutUC.ErrPaymentIntentNotFound):
			h.logger.Warn("POST /checkout - Payment intent not found: payment_intent_id=%s", req.PaymentIntentID)
			handlers.RespondNotFound(w, msgPaymentIntentNotFound)

		case errors.Is(err, checkoutUC.ErrDatesUnavailable):
			h.logger.Warn("POST /checkout - Dates unavailable: room_id=%s, user_id=%s", req.Booking.RoomID, guest.ID)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, checkoutUC.ErrAlreadyPaid):
			h.logger.Warn("POST /checkout - Booking already paid: payment_intent_id=%s", req.PaymentIntentID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, checkoutUC.ErrPaymentProvider):
			h.logger.Error("POST /checkout - Payment provider failure: user_id=%s, error=%v", guest.ID, err)
			handlers.RespondBadGateway(w, msgPaymentProvider)

		case errors.Is(err, checkoutUC.ErrRoomBusy):
			h.logger.Warn("POST /checkout - Room lock timeout: room_id=%s", req.Booking.RoomID)
			handlers.RespondBadGateway(w, msgRoomBusy)

		default:
			h.logger.Error("POST /checkout - Failed to checkout: user_id=%s, room_id=%s, error=%v",
				guest.ID, req.Booking.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /checkout - Checkout completed: booking_id=%s, payment_intent_id=%s, created=%t",
		result.Booking.ID, result.PaymentIntent.ID, result.Created)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
