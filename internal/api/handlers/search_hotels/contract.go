package search_hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/service/hotels/models"
)

type HotelService interface {
	Search(ctx context.Context, req *models.SearchHotelsRequest) (*models.HotelListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
