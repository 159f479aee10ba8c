package domain

import (
	"math"
	"time"
)

// Booking represents a room reservation and its payment state
type Booking struct {
	ID        string
	UserID    string // guest who made the reservation
	UserName  string
	UserEmail string

	HotelID      string
	RoomID       string
	HotelOwnerID string // denormalized for the owner's booking view

	StartDate         time.Time
	EndDate           time.Time
	BreakfastIncluded bool

	Currency      string
	TotalPrice    float64
	PaymentStatus bool

	// PaymentIntentID is unique: one intent belongs to exactly one booking attempt
	PaymentIntentID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPaid returns true if the payment for the booking has been confirmed
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus
}

// DateRange returns the booked date range
func (b *Booking) DateRange() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

// AmountMinorUnits returns the total price in the currency's minor units
func (b *Booking) AmountMinorUnits() int64 {
	return ToMinorUnits(b.TotalPrice)
}

// CanBeDeletedBy reports whether the user may remove the booking.
// Only the owner of the booked hotel may remove it, paid or not.
func (b *Booking) CanBeDeletedBy(userID string) bool {
	return userID != "" && b.HotelOwnerID == userID
}

// ToMinorUnits converts a price in major units (e.g. 450.00) to minor units (45000)
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * MinorUnitsPerMajor))
}

// BookedRanges returns the date ranges of the given bookings
func BookedRanges(bookings []*Booking) []DateRange {
	ranges := make([]DateRange, 0, len(bookings))
	for _, b := range bookings {
		ranges = append(ranges, b.DateRange())
	}
	return ranges
}
