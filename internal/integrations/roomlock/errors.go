package roomlock

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку номера не удалось получить за отведенное время
	ErrLockTimeout = errors.New("roomlock: lock wait timeout")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("roomlock: redis failure")
)
