package room

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

func TestRoomValuesMatchColumns(t *testing.T) {
	room := &domain.Room{
		ID:             "room_1",
		HotelID:        "hotel_1",
		Title:          "Deluxe",
		RoomPrice:      120,
		BreakfastPrice: 15,
		SoundProofed:   true,
	}

	values := roomValues(room)

	assert.Len(t, values, len(roomColumns))
	assert.Equal(t, "room_1", values[0])
	assert.Equal(t, "hotel_1", values[1])
	assert.Equal(t, "room_price", roomColumns[10])
	assert.Equal(t, 120.0, values[10])
	assert.Equal(t, "sound_proofed", roomColumns[len(roomColumns)-1])
	assert.Equal(t, true, values[len(values)-1])
}
