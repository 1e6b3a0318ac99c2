package payrollrun

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"erp-payroll/internal/events"
	"erp-payroll/internal/messaging/kafka"
	"erp-payroll/internal/payroll"
	"erp-payroll/internal/shared/contextutil"
	"erp-payroll/internal/shared/period"
	"erp-payroll/internal/trainerpay"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// RunSummary reports what a generation run did. A run with nothing to do is
// still a successful call; Generated distinguishes the two outcomes.
type RunSummary struct {
	Period        string
	EmployeeCount int
	TrainerCount  int
	Generated     bool
	Message       string
}

//go:generate mockgen -source=run_service.go -destination=mock/run_service_mock.go -package=mock
type Service interface {
	GenerateForMonth(ctx context.Context, periodValue string) (RunSummary, error)
}

type service struct {
	payrolls        payroll.Service
	trainerPayments trainerpay.Service
	outbox          kafka.OutboxRepository
	cache           *payroll.ViewCache

	// Collapses concurrent runs for the same period within this process.
	// The database unique indexes remain the authoritative guard across
	// processes.
	group singleflight.Group
}

func NewService(payrolls payroll.Service, trainerPayments trainerpay.Service) Service {
	return &service{payrolls: payrolls, trainerPayments: trainerPayments}
}

func NewServiceWithOutbox(
	payrolls payroll.Service,
	trainerPayments trainerpay.Service,
	outbox kafka.OutboxRepository,
	cache *payroll.ViewCache,
) Service {
	return &service{
		payrolls:        payrolls,
		trainerPayments: trainerPayments,
		outbox:          outbox,
		cache:           cache,
	}
}

func (s *service) GenerateForMonth(ctx context.Context, periodValue string) (RunSummary, error) {
	p, err := period.Parse(periodValue)
	if err != nil {
		return RunSummary{}, err
	}

	v, err, _ := s.group.Do(p.String(), func() (any, error) {
		return s.generate(ctx, p)
	})
	if err != nil {
		return RunSummary{}, err
	}

	return v.(RunSummary), nil
}

func (s *service) generate(ctx context.Context, p period.Period) (RunSummary, error) {
	start, end := p.Bounds()

	// The two generators share no state and may run concurrently; each one
	// still does its own read-then-write ordering internally.
	var employeeCount, trainerCount int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, genErr := s.payrolls.GenerateForPeriod(gctx, p)
		employeeCount = n
		return genErr
	})
	g.Go(func() error {
		n, genErr := s.trainerPayments.GenerateForRange(gctx, start, end)
		trainerCount = n
		return genErr
	})
	if err := g.Wait(); err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{
		Period:        p.String(),
		EmployeeCount: employeeCount,
		TrainerCount:  trainerCount,
	}

	if employeeCount == 0 && trainerCount == 0 {
		// Nothing inserted: tell "already generated" apart from "nothing
		// eligible" so the caller can render a useful message.
		existingRecords, err := s.payrolls.CountForPeriod(ctx, p)
		if err != nil {
			return RunSummary{}, err
		}
		existingPayments, err := s.trainerPayments.CountForRange(ctx, start, end)
		if err != nil {
			return RunSummary{}, err
		}

		if existingRecords > 0 || existingPayments > 0 {
			summary.Message = fmt.Sprintf("Payroll for %s was already generated; nothing to do", p)
		} else {
			summary.Message = fmt.Sprintf("No eligible employees or completed training sessions found for %s", p)
		}
		return summary, nil
	}

	summary.Generated = true
	summary.Message = fmt.Sprintf(
		"Generated %d payroll records and %d trainer payments for %s",
		employeeCount, trainerCount, p,
	)

	s.invalidateViews(ctx)
	s.enqueueGeneratedEvent(ctx, summary)

	return summary, nil
}

func (s *service) invalidateViews(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Warn("invalidate payroll views failed", zap.Error(err))
	}
}

// enqueueGeneratedEvent is fire and forget: a lost event means other
// instances serve a slightly stale list until the TTL expires, not a wrong
// payroll.
func (s *service) enqueueGeneratedEvent(ctx context.Context, summary RunSummary) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(events.PayrollGeneratedEvent{
		EventType:     "payroll.generated",
		Period:        summary.Period,
		EmployeeCount: summary.EmployeeCount,
		TrainerCount:  summary.TrainerCount,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		contextutil.GetLogger(ctx, zap.L()).Error("marshal payroll generated event failed", zap.Error(err))
		return
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   uuid.New().String(),
		EventType:     "payroll.generated",
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := s.outbox.Create(ctx, event); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Error("enqueue payroll generated event failed", zap.Error(err))
	}
}
