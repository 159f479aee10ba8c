package confirm_payment

import (
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
	confirmPayment "github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_payment"
)

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	Booking     *models.BookingResponse `json:"booking"`
	AlreadyPaid bool                    `json:"alreadyPaid"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		Booking:     models.FromDomainBooking(resp.Booking),
		AlreadyPaid: resp.AlreadyPaid,
	}
}
