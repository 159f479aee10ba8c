package roomlock

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNoopLocker(t *testing.T) {
	unlock, err := NoopLocker{}.Lock(context.Background(), "room_1")
	require.NoError(t, err)
	require.NotNil(t, unlock)
	unlock()
}

func TestLocker_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewLocker(client, Config{TTL: time.Second, WaitTimeout: 500 * time.Millisecond}, nopLogger{})

	unlock, err := l.Lock(context.Background(), "room_1")
	assert.Nil(t, unlock)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRedis)
}

func TestNewLocker_DefaultRetryInterval(t *testing.T) {
	l := NewLocker(nil, Config{TTL: time.Second}, nopLogger{})
	assert.Equal(t, 50*time.Millisecond, l.cfg.RetryInterval)
}
