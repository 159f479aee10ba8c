package events

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Routing keys
const (
	RoutingKeyCheckout = "booking.checkout"
	RoutingKeyPaid     = "booking.paid"
)

// BookingEvent событие об изменении бронирования
type BookingEvent struct {
	BookingID       string `json:"booking_id"`
	UserID          string `json:"user_id"`
	HotelID         string `json:"hotel_id"`
	RoomID          string `json:"room_id"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	AmountMinor     int64  `json:"amount_minor"`
	Currency        string `json:"currency"`
	PaymentIntentID string `json:"payment_intent_id"`
	PaymentStatus   bool   `json:"payment_status"`
	OccurredAt      string `json:"occurred_at"`
}

// NewBookingEvent строит событие по бронированию
func NewBookingEvent(b *domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		BookingID:       b.ID,
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		RoomID:          b.RoomID,
		StartDate:       b.StartDate.Format(domain.DateFormat),
		EndDate:         b.EndDate.Format(domain.DateFormat),
		AmountMinor:     b.AmountMinorUnits(),
		Currency:        b.Currency,
		PaymentIntentID: b.PaymentIntentID,
		PaymentStatus:   b.PaymentStatus,
		OccurredAt:      now.UTC().Format(time.RFC3339),
	}
}
