package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `Grand`, escapeLike("Grand"))
	assert.Equal(t, `100\% \_sea\_ view`, escapeLike("100% _sea_ view"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestHotelColumnsEndWithTimestamps(t *testing.T) {
	// Create вставляет все колонки, кроме двух последних (их заполняет БД)
	n := len(hotelColumns)
	assert.Equal(t, []string{"added_at", "updated_at"}, hotelColumns[n-2:])
}
