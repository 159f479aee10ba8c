package create_hotel

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

type HotelService interface {
	Create(ctx context.Context, userID string, req *models.CreateHotelRequest) (*models.HotelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
