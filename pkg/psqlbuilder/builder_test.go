package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "title").
		From("hotels").
		Where(squirrel.Eq{"user_id": "user_1"}).
		Where(squirrel.Eq{"country": "PT"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title FROM hotels WHERE user_id = $1 AND country = $2", query)
	assert.Equal(t, []interface{}{"user_1", "PT"}, args)
}

func TestUpdateUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("bookings").
		Set("payment_status", true).
		Where(squirrel.Eq{"payment_intent_id": "pi_1"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET payment_status = $1 WHERE payment_intent_id = $2", query)
	assert.Equal(t, []interface{}{true, "pi_1"}, args)
}
