package stripe

import "errors"

var (
	// ErrIntentNotFound возвращается, когда платежное намерение не найдено у провайдера
	ErrIntentNotFound = errors.New("stripe client: payment intent not found")

	// ErrProvider возвращается при отказе провайдера (сеть, 5xx, некорректный ответ)
	ErrProvider = errors.New("stripe client: provider failure")

	// ErrInvalidAmount возвращается при неположительной сумме
	ErrInvalidAmount = errors.New("stripe client: amount must be positive")
)
