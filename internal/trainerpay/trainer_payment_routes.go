package trainerpay

import (
	"erp-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payments := r.Group("/trainer-payments")
	{
		payments.GET("", middleware.RateLimitByIP(5, 10), handler.GetAll)
		payments.GET("/:id", middleware.RateLimitByIP(10, 20), handler.GetById)
		payments.POST("/:id/mark-paid", middleware.RateLimitByIP(1, 5), handler.MarkPaid)
	}
}
