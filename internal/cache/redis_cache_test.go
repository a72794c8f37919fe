package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Muashef/audiophile-ecommerce/internal/cache"
	"github.com/Muashef/audiophile-ecommerce/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOrder struct {
	OrderID string  `json:"orderId"`
	Total   float64 `json:"total"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.OrderKeyPrefix, "abc")
	value := testOrder{OrderID: "abc", Total: 270}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetVal(string(jsonData))

		var result testOrder
		found, err := c.Get(ctx, key, &result)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).RedisNil()

		var result testOrder
		found, err := c.Get(ctx, key, &result)

		require.NoError(t, err, "a miss is not an error")
		assert.False(t, found)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectGet(key).SetErr(errors.New("redis down"))

		var result testOrder
		found, err := c.Get(ctx, key, &result)

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.OrderKeyPrefix, "abc")
	value := testOrder{OrderID: "abc", Total: 270}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectSet(key, jsonData, time.Minute).SetVal("OK")

		err := c.Set(ctx, key, value, time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Falls Back To Default", func(t *testing.T) {
		c, mock := setup(t)
		mock.ExpectSet(key, jsonData, 10*time.Minute).SetVal("OK")

		err := c.Set(ctx, key, value, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.OrderKeyPrefix, "abc")

	c, mock := setup(t)
	mock.ExpectDel(key).SetVal(1)

	err := c.Delete(ctx, key)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
