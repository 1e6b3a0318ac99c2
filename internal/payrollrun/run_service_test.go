package payrollrun_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"erp-payroll/internal/events"
	"erp-payroll/internal/messaging/kafka"
	"erp-payroll/internal/payroll"
	"erp-payroll/internal/payrollrun"
	"erp-payroll/internal/shared/period"
	"erp-payroll/internal/trainerpay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollService struct {
	generateForPeriodFn func(ctx context.Context, p period.Period) (int, error)
	countForPeriodFn    func(ctx context.Context, p period.Period) (int64, error)
}

func (f *fakePayrollService) GenerateForPeriod(ctx context.Context, p period.Period) (int, error) {
	return f.generateForPeriodFn(ctx, p)
}

func (f *fakePayrollService) GetAll(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollRecordResponse, error) {
	return nil, nil
}

func (f *fakePayrollService) GetByID(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	return payroll.PayrollRecordResponse{}, nil
}

func (f *fakePayrollService) UpdateAmounts(ctx context.Context, id string, req payroll.UpdatePayrollAmountsRequest) (payroll.PayrollRecordResponse, error) {
	return payroll.PayrollRecordResponse{}, nil
}

func (f *fakePayrollService) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	return payroll.PayrollRecordResponse{}, nil
}

func (f *fakePayrollService) PayAllPending(ctx context.Context, p period.Period) (int64, error) {
	return 0, nil
}

func (f *fakePayrollService) CountForPeriod(ctx context.Context, p period.Period) (int64, error) {
	return f.countForPeriodFn(ctx, p)
}

type fakeTrainerPayService struct {
	generateForRangeFn func(ctx context.Context, start, end time.Time) (int, error)
	countForRangeFn    func(ctx context.Context, start, end time.Time) (int64, error)
}

func (f *fakeTrainerPayService) GenerateForRange(ctx context.Context, start, end time.Time) (int, error) {
	return f.generateForRangeFn(ctx, start, end)
}

func (f *fakeTrainerPayService) GetAll(ctx context.Context, filter trainerpay.GetTrainerPaymentsFilterRequest) ([]trainerpay.TrainerPaymentResponse, error) {
	return nil, nil
}

func (f *fakeTrainerPayService) GetByID(ctx context.Context, id string) (trainerpay.TrainerPaymentResponse, error) {
	return trainerpay.TrainerPaymentResponse{}, nil
}

func (f *fakeTrainerPayService) MarkPaid(ctx context.Context, id string) (trainerpay.TrainerPaymentResponse, error) {
	return trainerpay.TrainerPaymentResponse{}, nil
}

func (f *fakeTrainerPayService) CountForRange(ctx context.Context, start, end time.Time) (int64, error) {
	return f.countForRangeFn(ctx, start, end)
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error   { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id, r string) error { return nil }

func TestGenerateForMonth_GeneratesBothKindsAndEnqueuesEvent(t *testing.T) {
	payrolls := &fakePayrollService{
		generateForPeriodFn: func(ctx context.Context, p period.Period) (int, error) {
			assert.Equal(t, "2026-02", p.String())
			return 12, nil
		},
	}
	trainers := &fakeTrainerPayService{
		generateForRangeFn: func(ctx context.Context, start, end time.Time) (int, error) {
			assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), end)
			return 3, nil
		},
	}
	outbox := &fakeOutboxRepository{}

	svc := payrollrun.NewServiceWithOutbox(payrolls, trainers, outbox, nil)

	summary, err := svc.GenerateForMonth(context.Background(), "2026-02")

	assert.NoError(t, err)
	assert.True(t, summary.Generated)
	assert.Equal(t, 12, summary.EmployeeCount)
	assert.Equal(t, 3, summary.TrainerCount)
	assert.Equal(t, "Generated 12 payroll records and 3 trainer payments for 2026-02", summary.Message)

	require.Len(t, outbox.created, 1)
	event := outbox.created[0]
	assert.Equal(t, events.PayrollGeneratedTopic, event.Topic)
	assert.Equal(t, "payroll.generated", event.EventType)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)

	var payload events.PayrollGeneratedEvent
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "2026-02", payload.Period)
	assert.Equal(t, 12, payload.EmployeeCount)
	assert.Equal(t, 3, payload.TrainerCount)
}

func TestGenerateForMonth_AlreadyGenerated(t *testing.T) {
	payrolls := &fakePayrollService{
		generateForPeriodFn: func(ctx context.Context, p period.Period) (int, error) { return 0, nil },
		countForPeriodFn:    func(ctx context.Context, p period.Period) (int64, error) { return 42, nil },
	}
	trainers := &fakeTrainerPayService{
		generateForRangeFn: func(ctx context.Context, start, end time.Time) (int, error) { return 0, nil },
		countForRangeFn:    func(ctx context.Context, start, end time.Time) (int64, error) { return 5, nil },
	}
	outbox := &fakeOutboxRepository{}

	svc := payrollrun.NewServiceWithOutbox(payrolls, trainers, outbox, nil)

	summary, err := svc.GenerateForMonth(context.Background(), "2026-02")

	assert.NoError(t, err)
	assert.False(t, summary.Generated)
	assert.Contains(t, summary.Message, "already generated")
	assert.Empty(t, outbox.created, "no event for a run that inserted nothing")
}

func TestGenerateForMonth_NothingEligible(t *testing.T) {
	payrolls := &fakePayrollService{
		generateForPeriodFn: func(ctx context.Context, p period.Period) (int, error) { return 0, nil },
		countForPeriodFn:    func(ctx context.Context, p period.Period) (int64, error) { return 0, nil },
	}
	trainers := &fakeTrainerPayService{
		generateForRangeFn: func(ctx context.Context, start, end time.Time) (int, error) { return 0, nil },
		countForRangeFn:    func(ctx context.Context, start, end time.Time) (int64, error) { return 0, nil },
	}

	svc := payrollrun.NewService(payrolls, trainers)

	summary, err := svc.GenerateForMonth(context.Background(), "2026-02")

	assert.NoError(t, err)
	assert.False(t, summary.Generated)
	assert.Contains(t, summary.Message, "No eligible employees or completed training sessions")
}

func TestGenerateForMonth_InvalidPeriod(t *testing.T) {
	svc := payrollrun.NewService(&fakePayrollService{}, &fakeTrainerPayService{})

	for _, value := range []string{"", "2026-13", "02-2026", "2026/02", "not-a-period"} {
		_, err := svc.GenerateForMonth(context.Background(), value)
		assert.Error(t, err, "period %q", value)
	}
}

func TestGenerateForMonth_GeneratorErrorAborts(t *testing.T) {
	payrolls := &fakePayrollService{
		generateForPeriodFn: func(ctx context.Context, p period.Period) (int, error) {
			return 0, errors.New("roster unavailable")
		},
	}
	trainers := &fakeTrainerPayService{
		generateForRangeFn: func(ctx context.Context, start, end time.Time) (int, error) { return 2, nil },
	}
	outbox := &fakeOutboxRepository{}

	svc := payrollrun.NewServiceWithOutbox(payrolls, trainers, outbox, nil)

	_, err := svc.GenerateForMonth(context.Background(), "2026-02")

	assert.Error(t, err)
	assert.Empty(t, outbox.created)
}

func TestGenerateForMonth_PartialGenerationStillReports(t *testing.T) {
	payrolls := &fakePayrollService{
		generateForPeriodFn: func(ctx context.Context, p period.Period) (int, error) { return 0, nil },
	}
	trainers := &fakeTrainerPayService{
		generateForRangeFn: func(ctx context.Context, start, end time.Time) (int, error) { return 4, nil },
	}

	svc := payrollrun.NewService(payrolls, trainers)

	summary, err := svc.GenerateForMonth(context.Background(), "2026-02")

	assert.NoError(t, err)
	assert.True(t, summary.Generated)
	assert.Equal(t, 0, summary.EmployeeCount)
	assert.Equal(t, 4, summary.TrainerCount)
	assert.True(t, strings.HasPrefix(summary.Message, "Generated 0 payroll records and 4 trainer payments"))
}
