package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"erp-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitByIP_BlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/limited", middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
	assert.Equal(t, http.StatusTooManyRequests, codes[3])
}

func TestIdempotency_PassesThroughWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, _ := redismock.NewClientMock()

	handled := false
	router := gin.New()
	router.POST("/runs", middleware.Idempotency(rdb), func(c *gin.Context) {
		handled = true
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/runs", nil)
	router.ServeHTTP(rec, req)

	assert.True(t, handled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	cached := `{"ok":true,"data":{"period":"2026-02"}}`
	// c.ClientIP() resolves to 192.0.2.1 for httptest requests.
	mock.ExpectGet("idemp:/runs:192.0.2.1:abc123").SetVal(cached)

	router := gin.New()
	router.POST("/runs", middleware.Idempotency(rdb), func(c *gin.Context) {
		t.Fatal("handler must not run for a cached key")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/runs", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, cached, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RejectsConcurrentDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	key := "idemp:/runs:192.0.2.1:abc123"
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(false)

	router := gin.New()
	router.POST("/runs", middleware.Idempotency(rdb), func(c *gin.Context) {
		t.Fatal("handler must not run while the first request holds the lock")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/runs", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestAcquiresLock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	key := "idemp:/runs:192.0.2.1:abc123"
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSetNX(key+":lock", "locked", 30*time.Second).SetVal(true)

	var cacheKey, lockKey string
	router := gin.New()
	router.POST("/runs", middleware.Idempotency(rdb), func(c *gin.Context) {
		cacheKey = c.GetString("idempotency_cache_key")
		lockKey = c.GetString("idempotency_lock_key")
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/runs", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, key, cacheKey)
	assert.Equal(t, key+":lock", lockKey)
}
