package confirm_payment

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе платежного намерения
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование с таким намерением не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrPaymentNotCompleted возвращается, когда провайдер еще не подтвердил оплату
	ErrPaymentNotCompleted = errors.New("confirm_payment: payment is not completed")

	// ErrPaymentProvider возвращается при отказе платежного провайдера
	ErrPaymentProvider = errors.New("confirm_payment: payment provider failure")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
