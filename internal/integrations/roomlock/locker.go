package roomlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hotelbooking:roomlock:"

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Config параметры блокировки
type Config struct {
	TTL           time.Duration // время жизни ключа блокировки
	WaitTimeout   time.Duration // сколько ждать освобождения занятой блокировки
	RetryInterval time.Duration
}

// Locker распределенная блокировка номера на время проверки и записи бронирования
type Locker struct {
	client *redis.Client
	cfg    Config
	log    Logger
}

// NewLocker создает новый экземпляр блокировки на Redis
func NewLocker(client *redis.Client, cfg Config, log Logger) *Locker {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 50 * time.Millisecond
	}
	return &Locker{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

// Lock захватывает блокировку номера и возвращает функцию освобождения
func (l *Locker) Lock(ctx context.Context, roomID string) (func(), error) {
	key := keyPrefix + roomID
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.cfg.WaitTimeout)
	defer cancel()

	for {
		ok, err := l.client.SetNX(waitCtx, key, token, l.cfg.TTL).Result()
		if err != nil {
			if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: room_id=%s", ErrLockTimeout, roomID)
			}
			return nil, fmt.Errorf("%w: Lock - set nx: %v", ErrRedis, err)
		}
		if ok {
			break
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			l.log.Warn("RoomLock: timeout waiting for room_id=%s", roomID)
			return nil, fmt.Errorf("%w: room_id=%s", ErrLockTimeout, roomID)
		case <-time.After(l.cfg.RetryInterval):
		}
	}

	unlock := func() {
		// Контекст запроса может быть уже отменен
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Error("RoomLock: failed to release room_id=%s: %v", roomID, err)
		}
	}

	return unlock, nil
}

// NoopLocker используется, когда Redis отключен; сериализацию обеспечивает транзакция в БД
type NoopLocker struct{}

// Lock ничего не блокирует
func (NoopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}
