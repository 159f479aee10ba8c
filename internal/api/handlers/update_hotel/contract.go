package update_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

type HotelService interface {
	Update(ctx context.Context, id, userID string, req *models.UpdateHotelRequest) (*models.HotelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
