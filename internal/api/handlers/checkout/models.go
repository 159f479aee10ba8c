package checkout

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/bookings/models"
	checkoutUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/checkout"
)

// BookingInput бронирование в теле запроса
type BookingInput struct {
	HotelID           string  `json:"hotelId" validate:"required,uuid"`
	RoomID            string  `json:"roomId" validate:"required,uuid"`
	StartDate         string  `json:"startDate" validate:"required"`
	EndDate           string  `json:"endDate" validate:"required"`
	BreakfastIncluded bool    `json:"breakfastIncluded"`
	TotalPrice        float64 `json:"totalPrice" validate:"gt=0"`
}

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	Booking         BookingInput `json:"booking" validate:"required"`
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
}

// PaymentIntentResponse платежное намерение в ответе
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	PaymentIntent PaymentIntentResponse   `json:"paymentIntent"`
	Booking       *models.BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckoutRequest) ToUseCaseRequest(guest domain.Guest) (*checkoutUC.Request, error) {
	startDate, err := handlers.ParseDate(r.Booking.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}

	endDate, err := handlers.ParseDate(r.Booking.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &checkoutUC.Request{
		Guest:             guest,
		HotelID:           r.Booking.HotelID,
		RoomID:            r.Booking.RoomID,
		StartDate:         startDate,
		EndDate:           endDate,
		BreakfastIncluded: r.Booking.BreakfastIncluded,
		TotalPrice:        r.Booking.TotalPrice,
		PaymentIntentID:   r.PaymentIntentID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	return &CheckoutResponse{
		PaymentIntent: PaymentIntentResponse{
			ID:           resp.PaymentIntent.ID,
			ClientSecret: resp.PaymentIntent.ClientSecret,
			Amount:       resp.PaymentIntent.Amount,
			Currency:     resp.PaymentIntent.Currency,
			Status:       resp.PaymentIntent.Status,
		},
		Booking: models.FromDomainBooking(resp.Booking),
	}
}
