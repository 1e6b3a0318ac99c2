package consumer

import (
	"context"
	"encoding/json"

	"erp-payroll/internal/events"
	"erp-payroll/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollGenerated drops cached payroll views whenever another
// instance finishes a generation run, so stale lists never outlive a run.
func ConsumePayrollGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	cache *payroll.ViewCache,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_generated")
	log.Info("payroll generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll generated consumer stopped")
				return
			}
			log.Error("fetch payroll generated message failed", zap.Error(err))
			continue
		}

		var event events.PayrollGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := cache.Invalidate(ctx); err != nil {
			log.Error("invalidate payroll views failed",
				zap.String("period", event.Period),
				zap.Error(err),
			)
			// Do not commit: retry on the next fetch.
			continue
		}

		log.Info("payroll views invalidated",
			zap.String("period", event.Period),
			zap.Int("employee_count", event.EmployeeCount),
			zap.Int("trainer_count", event.TrainerCount),
		)
		_ = reader.CommitMessages(ctx, msg)
	}
}
