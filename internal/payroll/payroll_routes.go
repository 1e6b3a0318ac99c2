package payroll

import (
	"erp-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", middleware.RateLimitByIP(5, 10), handler.GetAll)
		payrolls.GET("/:id", middleware.RateLimitByIP(10, 20), handler.GetById)
		payrolls.PATCH("/:id/amounts", middleware.RateLimitByIP(1, 5), handler.UpdateAmounts)
		payrolls.POST("/:id/mark-paid", middleware.RateLimitByIP(1, 5), handler.MarkPaid)
		payrolls.POST("/pay-all", middleware.RateLimitByIP(0.2, 2), handler.PayAllPending)
	}
}
