package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"erp-payroll/internal/events"
	"erp-payroll/internal/messaging/kafka/consumer"
	"erp-payroll/internal/payroll"
	"erp-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer subscribes to payroll.generated events and invalidates the
// local redis view cache, keeping list views fresh across API instances.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	groupID := os.Getenv("KAFKA_CONSUMER_GROUP")
	if groupID == "" {
		groupID = "erp-payroll-views"
	}

	reader := consumer.NewReader(kafkaBroker, events.PayrollGeneratedTopic, groupID)
	defer reader.Close()

	viewCache := payroll.NewViewCache(redisClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollGenerated(ctx, reader, viewCache, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
