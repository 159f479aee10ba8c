package checkout

import "errors"

var (
	// ErrUnauthenticated возвращается, когда запрос выполнен без идентификации гостя
	ErrUnauthenticated = errors.New("checkout: guest is not authenticated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrRoomNotFound возвращается, когда номер не найден или не принадлежит отелю
	ErrRoomNotFound = errors.New("checkout: room not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("checkout: hotel not found")

	// ErrPaymentIntentNotFound возвращается, когда провайдер не знает указанное платежное намерение
	ErrPaymentIntentNotFound = errors.New("checkout: payment intent not found")

	// ErrDatesUnavailable возвращается, когда даты пересекаются с оплаченным бронированием
	ErrDatesUnavailable = errors.New("checkout: room is already booked for the selected dates")

	// ErrAlreadyPaid возвращается при попытке изменить оплаченное бронирование
	ErrAlreadyPaid = errors.New("checkout: booking is already paid")

	// ErrPaymentProvider возвращается при отказе платежного провайдера
	ErrPaymentProvider = errors.New("checkout: payment provider failure")

	// ErrRoomBusy возвращается, когда номер заблокирован параллельным оформлением
	ErrRoomBusy = errors.New("checkout: room is being booked concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)
