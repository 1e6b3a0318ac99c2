package training

import (
	"erp-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/training-sessions", middleware.RateLimitByIP(5, 10), handler.GetSessions)
	r.GET("/trainers", middleware.RateLimitByIP(5, 10), handler.GetTrainers)
}
