package payroll_test

import (
	"context"
	"testing"
	"time"

	"erp-payroll/internal/payroll"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestViewCache_GetSetRoundTrip(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := payroll.NewViewCache(rdb)

	key := payroll.ListKey("2026-02", "pending", 1, 10)
	payload := []byte(`{"ok":true}`)

	mock.ExpectSet(key, payload, 5*time.Minute).SetVal("OK")
	mock.ExpectGet(key).SetVal(string(payload))

	cache.Set(context.Background(), key, payload)

	got, hit := cache.Get(context.Background(), key)
	assert.True(t, hit)
	assert.Equal(t, payload, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewCache_GetMissesOnEmptyCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := payroll.NewViewCache(rdb)

	key := payroll.ListKey("2026-02", "", 1, 10)
	mock.ExpectGet(key).RedisNil()

	_, hit := cache.Get(context.Background(), key)
	assert.False(t, hit)
}

func TestViewCache_InvalidateDropsAllListKeys(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := payroll.NewViewCache(rdb)

	keys := []string{
		payroll.ListKey("2026-02", "pending", 1, 10),
		payroll.ListKey("2026-02", "", 2, 25),
	}
	mock.ExpectScan(0, "payroll:views:*", 100).SetVal(keys, 0)
	mock.ExpectDel(keys...).SetVal(int64(len(keys)))

	err := cache.Invalidate(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewCache_NilClientIsNoop(t *testing.T) {
	cache := payroll.NewViewCache(nil)

	_, hit := cache.Get(context.Background(), "whatever")
	assert.False(t, hit)
	cache.Set(context.Background(), "whatever", []byte("x"))
	assert.NoError(t, cache.Invalidate(context.Background()))
}
