package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"altoque/internal/cache"
	"altoque/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "altoque:sheet:questions:rows"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("[]")
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, "[]", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Hour).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, "k", "v", time.Hour))

	redisErr := errors.New("readonly replica")
	mock.ExpectSet("k", "v", time.Hour).SetErr(redisErr)
	assert.ErrorIs(t, adapter.Set(ctx, "k", "v", time.Hour), redisErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("MultipleKeys", func(t *testing.T) {
		mock.ExpectDel("a", "b").SetVal(1)
		assert.NoError(t, adapter.Delete(ctx, "a", "b"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoKeys", func(t *testing.T) {
		assert.NoError(t, adapter.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_JSONRoundTrip(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	slot := domain.ScheduleSlot{Day: "Monday", Time: "18:00", Course: "Junior Cert Spanish", Enabled: true}
	payload := `{"day":"Monday","time":"18:00","course":"Junior Cert Spanish","enabled":true}`

	mock.ExpectSet("slot", payload, time.Minute).SetVal("OK")
	require.NoError(t, cache.SetJSON(ctx, adapter, "slot", slot, time.Minute))

	mock.ExpectGet("slot").SetVal(payload)
	var got domain.ScheduleSlot
	require.NoError(t, cache.GetJSON(ctx, adapter, "slot", &got))
	assert.Equal(t, slot, got)

	mock.ExpectGet("slot").SetErr(redis.Nil)
	assert.ErrorIs(t, cache.GetJSON(ctx, adapter, "slot", &got), domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}
