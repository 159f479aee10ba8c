package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

func TestUpdateByPaymentIntentQuery_SkipsPaidRows(t *testing.T) {
	booking := &domain.Booking{
		UserName:          "Jane",
		UserEmail:         "jane@example.com",
		HotelID:           "hotel_1",
		RoomID:            "room_1",
		HotelOwnerID:      "owner_1",
		StartDate:         time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC),
		BreakfastIncluded: true,
		Currency:          "usd",
		TotalPrice:        500,
	}

	query, args, err := updateByPaymentIntentQuery("pi_1", "guest_1", booking)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE bookings SET")
	assert.Contains(t, query, "payment_intent_id = $")
	assert.Contains(t, query, "user_id = $")
	assert.Contains(t, query, "payment_status = $")
	assert.NotContains(t, query, ", payment_status = ")
	assert.Contains(t, query, "RETURNING id, user_id")

	assert.Contains(t, args, "pi_1")
	assert.Contains(t, args, "guest_1")
	assert.Contains(t, args, false)
}
