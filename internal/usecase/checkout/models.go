package checkout

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Config параметры оформления бронирования
type Config struct {
	Currency     string // единственная валюта платежей, например "usd"
	WriteRetries int    // повторы локальной записи после успешного вызова провайдера
}

// Request модель запроса на оформление бронирования
type Request struct {
	Guest domain.Guest // гость из токена

	HotelID           string
	RoomID            string
	StartDate         time.Time
	EndDate           time.Time
	BreakfastIncluded bool
	TotalPrice        float64 // в основных единицах валюты

	// PaymentIntentID ранее выданное намерение (пусто при первом оформлении)
	PaymentIntentID string
}

// Response модель ответа
type Response struct {
	Booking       *domain.Booking
	PaymentIntent *domain.PaymentIntent
	Created       bool // true, если создано новое бронирование и новое намерение
}
