package hotels

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	Search(ctx context.Context, filter domain.HotelFilter) ([]*domain.Hotel, error)
	Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	Delete(ctx context.Context, id string) error
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByHotelIDs(ctx context.Context, hotelIDs []string) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
