package check_availability

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Request модель запроса проверки доступности
type Request struct {
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
}

// Response модель ответа
type Response struct {
	RoomID    string
	StartDate time.Time
	EndDate   time.Time
	Available bool
	Nights    int
	// BookedRanges занятые оплаченными бронированиями периоды номера
	BookedRanges []domain.DateRange
}
