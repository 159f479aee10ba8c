package confirm_payment

import "github.com/m04kA/SMC-HotelBooking/internal/domain"

// Config параметры подтверждения оплаты
type Config struct {
	// VerifyWithProvider перед отметкой об оплате проверяет статус намерения у провайдера
	VerifyWithProvider bool
}

// Request модель запроса на подтверждение оплаты
type Request struct {
	PaymentIntentID string
}

// Response модель ответа
type Response struct {
	Booking *domain.Booking
	// AlreadyPaid true, если бронирование было оплачено до этого вызова
	AlreadyPaid bool
}
