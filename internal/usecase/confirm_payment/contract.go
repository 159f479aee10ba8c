package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Booking, error)
	SetPaid(ctx context.Context, paymentIntentID string) (*domain.Booking, error)
}

// PaymentProvider интерфейс платежного провайдера
type PaymentProvider interface {
	RetrieveIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishPaid(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
