package employee

import (
	"erp-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RateLimitByIP(5, 10), handler.GetAll)
		employees.GET("/:id", middleware.RateLimitByIP(10, 20), handler.GetById)
	}
}
