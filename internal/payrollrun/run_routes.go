package payrollrun

import (
	"erp-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	runs := r.Group("/payroll-runs")
	{
		if redisClient != nil {
			runs.POST("",
				middleware.RateLimitByIP(0.2, 2),
				middleware.Idempotency(redisClient),
				handler.Generate,
			)
		} else {
			runs.POST("", middleware.RateLimitByIP(0.2, 2), handler.Generate)
		}
	}
}
