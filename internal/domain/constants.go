package domain

import "time"

// Payment constants
const (
	DefaultCurrency    = "usd"
	MinorUnitsPerMajor = 100

	PaymentIntentStatusSucceeded = "succeeded"
)

// Availability constants
const (
	// PaidBookingsLookback bookings that ended before now minus this window do not affect availability
	PaidBookingsLookback = 24 * time.Hour
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
