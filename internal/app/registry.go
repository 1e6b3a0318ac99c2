package app

import (
	"database/sql"

	"erp-payroll/internal/employee"
	"erp-payroll/internal/messaging/kafka"
	"erp-payroll/internal/payroll"
	"erp-payroll/internal/payrollrun"
	"erp-payroll/internal/trainerpay"
	"erp-payroll/internal/training"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	trainingRepo := training.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	trainerPaymentRepo := trainerpay.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	viewCache := payroll.NewViewCache(rdb)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	trainingService := training.NewService(trainingRepo)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo)
	trainerPaymentService := trainerpay.NewService(db, trainerPaymentRepo, trainingRepo)
	runService := payrollrun.NewServiceWithOutbox(
		payrollService,
		trainerPaymentService,
		outboxRepo,
		viewCache,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	trainingHandler := training.NewHandler(trainingService)
	payrollHandler := payroll.NewHandlerWithCache(payrollService, viewCache)
	trainerPaymentHandler := trainerpay.NewHandler(trainerPaymentService)
	runHandler := payrollrun.NewHandlerWithRedis(runService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		training.RegisterRoutes(api, trainingHandler)
		payroll.RegisterRoutes(api, payrollHandler)
		trainerpay.RegisterRoutes(api, trainerPaymentHandler)
		payrollrun.RegisterRoutes(api, runHandler, rdb)
	}

	return nil
}
