package get_owner_hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

type HotelService interface {
	GetOwnerHotels(ctx context.Context, userID string) (*models.HotelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
