package checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentIntent(ctx context.Context, paymentIntentID, userID string) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateByPaymentIntent(ctx context.Context, paymentIntentID, userID string, booking *domain.Booking) (*domain.Booking, error)
	ListPaidByRoom(ctx context.Context, roomID string, notBefore time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
}

// PaymentProvider интерфейс платежного провайдера
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*domain.PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)
	UpdateIntentAmount(ctx context.Context, id string, amount int64) (*domain.PaymentIntent, error)
}

// RoomLocker интерфейс блокировки номера на время проверки и записи
type RoomLocker interface {
	Lock(ctx context.Context, roomID string) (func(), error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishCheckout(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
