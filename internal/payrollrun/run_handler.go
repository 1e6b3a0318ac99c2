package payrollrun

import (
	"encoding/json"
	"net/http"
	"time"

	"erp-payroll/internal/shared/apperror"
	"erp-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) Generate(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req GenerateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	summary, err := h.service.GenerateForMonth(c.Request.Context(), req.Period)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp := RunSummaryResponse{
		Period:        summary.Period,
		EmployeeCount: summary.EmployeeCount,
		TrainerCount:  summary.TrainerCount,
		Generated:     summary.Generated,
		Message:       summary.Message,
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if envelope, marshalErr := json.Marshal(response.ApiEnvelope{Ok: true, Data: resp}); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, envelope, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}
