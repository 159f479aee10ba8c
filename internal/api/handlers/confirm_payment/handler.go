package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_payment"
)

const (
	msgInvalidPaymentIntentID = "некорректный ID платежного намерения"
	msgBookingNotFound        = "бронирование не найдено"
	msgPaymentNotCompleted    = "оплата еще не завершена"
	msgPaymentProvider        = "платежный провайдер недоступен"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/payment/{paymentIntentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentIntentID := mux.Vars(r)["paymentIntentId"]

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{PaymentIntentID: paymentIntentID})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/payment/{paymentIntentId} - Invalid payment intent id")
			handlers.RespondBadRequest(w, msgInvalidPaymentIntentID)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/payment/{paymentIntentId} - Booking not found: payment_intent_id=%s", paymentIntentID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrPaymentNotCompleted):
			h.logger.Warn("PATCH /bookings/payment/{paymentIntentId} - Payment not completed: payment_intent_id=%s", paymentIntentID)
			handlers.RespondConflict(w, msgPaymentNotCompleted)

		case errors.Is(err, confirmPayment.ErrPaymentProvider):
			h.logger.Error("PATCH /bookings/payment/{paymentIntentId} - Payment provider failure: payment_intent_id=%s, error=%v",
				paymentIntentID, err)
			handlers.RespondBadGateway(w, msgPaymentProvider)

		default:
			h.logger.Error("PATCH /bookings/payment/{paymentIntentId} - Failed to confirm payment: payment_intent_id=%s, error=%v",
				paymentIntentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/payment/{paymentIntentId} - Payment confirmed: booking_id=%s, already_paid=%t",
		result.Booking.ID, result.AlreadyPaid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
