package payroll

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"erp-payroll/internal/employee"
	payrollerrors "erp-payroll/internal/payroll/errors"
	"erp-payroll/internal/shared/apperror"
	"erp-payroll/internal/shared/contextutil"
	"erp-payroll/internal/shared/period"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GenerateForPeriod(ctx context.Context, p period.Period) (int, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollRecordResponse, error)
	GetByID(ctx context.Context, id string) (PayrollRecordResponse, error)
	UpdateAmounts(ctx context.Context, id string, req UpdatePayrollAmountsRequest) (PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollRecordResponse, error)
	PayAllPending(ctx context.Context, p period.Period) (int64, error)
	CountForPeriod(ctx context.Context, p period.Period) (int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository

	// Amounts on a paid record can currently still be corrected; flip this
	// off once product decides otherwise.
	allowPaidEdit bool
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository) Service {
	return &service{
		db:            db,
		repo:          repo,
		employees:     employees,
		allowPaidEdit: true,
	}
}

// GenerateForPeriod creates one pending record per active employee not yet
// covered for the month and returns how many rows were inserted. A second
// call for the same period with an unchanged roster inserts nothing.
func (s *service) GenerateForPeriod(ctx context.Context, p period.Period) (int, error) {
	log := contextutil.GetLogger(ctx, zap.L()).Named("payroll.generate")
	periodKey := p.String()

	roster, err := s.employees.FindActive(ctx)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInternalError,
			"fetch employee roster failed", http.StatusInternalServerError)
	}
	if len(roster) == 0 {
		return 0, nil
	}

	covered, err := s.repo.FindEmployeeIDsForPeriod(ctx, periodKey)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.CodeInternalError,
			"fetch existing payroll records failed", http.StatusInternalServerError)
	}

	records := make([]PayrollRecord, 0, len(roster))
	for _, emp := range roster {
		if _, ok := covered[emp.ID]; ok {
			continue
		}

		records = append(records, PayrollRecord{
			ID:              uuid.New(),
			EmployeeID:      emp.ID,
			Period:          periodKey,
			BaseSalary:      emp.BaseSalary,
			Bonuses:         0,
			TotalDeductions: 0,
			NetSalary:       CalculateNetSalary(emp.BaseSalary, 0, 0),
			Status:          StatusPending,
		})
	}

	if len(records) == 0 {
		return 0, nil
	}

	created, err := s.repo.CreateBatch(ctx, records)
	if err == nil {
		log.Info("payroll records generated",
			zap.String("period", periodKey),
			zap.Int("created", created),
			zap.Int("skipped", len(roster)-created),
		)
		return created, nil
	}

	// Best effort: the bulk statement failed as a whole, retry row by row so
	// one bad row does not sink the rest of the batch.
	log.Warn("bulk payroll insert failed, retrying per row", zap.Error(err))

	created = 0
	for i := range records {
		if insertErr := s.repo.Create(ctx, &records[i]); insertErr != nil {
			if IsUniqueViolation(insertErr) {
				continue
			}
			log.Warn("insert payroll record failed",
				zap.String("employee_id", records[i].EmployeeID.String()),
				zap.String("period", periodKey),
				zap.Error(insertErr),
			)
			continue
		}
		created++
	}

	log.Info("payroll records generated",
		zap.String("period", periodKey),
		zap.Int("created", created),
	)
	return created, nil
}

func (s *service) GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollRecordResponse, error) {
	repoFilter := QueryFilter{}

	if filter.Period != "" {
		p, err := period.Parse(filter.Period)
		if err != nil {
			return nil, err
		}
		key := p.String()
		repoFilter.Period = &key
	}
	if filter.Status != "" {
		if filter.Status != StatusPending && filter.Status != StatusPaid {
			return nil, payrollerrors.ErrInvalidStatusFilter
		}
		status := filter.Status
		repoFilter.Status = &status
	}

	records, err := s.repo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollRecordResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollRecordResponse{}, mapLookupError(err)
	}

	return mapToResponse(*record), nil
}

// UpdateAmounts persists new bonuses/deductions and recomputes the net
// salary from the stored base-salary snapshot. No status transition occurs.
func (s *service) UpdateAmounts(ctx context.Context, id string, req UpdatePayrollAmountsRequest) (PayrollRecordResponse, error) {
	if req.Bonuses == nil || req.TotalDeductions == nil {
		return PayrollRecordResponse{}, apperror.ErrInvalidInput
	}
	bonuses, deductions := *req.Bonuses, *req.TotalDeductions
	if bonuses < 0 || deductions < 0 {
		return PayrollRecordResponse{}, payrollerrors.ErrNegativeAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollRecordResponse{}, mapLookupError(err)
	}

	if !s.allowPaidEdit && record.Status == StatusPaid {
		return PayrollRecordResponse{}, payrollerrors.ErrPaidRecordLocked
	}

	record.Bonuses = bonuses
	record.TotalDeductions = deductions
	record.NetSalary = CalculateNetSalary(record.BaseSalary, bonuses, deductions)

	if err := qtx.Update(ctx, record); err != nil {
		return PayrollRecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollRecordResponse{}, err
	}

	return mapToResponse(*record), nil
}

// MarkPaid transitions a single record to paid and stamps paid_at. Paying an
// already-paid record just re-sets the same status.
func (s *service) MarkPaid(ctx context.Context, id string) (PayrollRecordResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollRecordResponse{}, mapLookupError(err)
	}

	now := time.Now().UTC()
	record.Status = StatusPaid
	record.PaidAt = &now

	if err := qtx.Update(ctx, record); err != nil {
		return PayrollRecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollRecordResponse{}, err
	}

	return mapToResponse(*record), nil
}

// PayAllPending bulk-transitions every pending record of the period to paid
// and returns how many rows changed. Other periods and already-paid records
// are untouched.
func (s *service) PayAllPending(ctx context.Context, p period.Period) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.BulkUpdateStatus(ctx, p.String(), StatusPending, StatusPaid, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	contextutil.GetLogger(ctx, zap.L()).Info("pending payroll records paid",
		zap.String("period", p.String()),
		zap.Int64("count", affected),
	)
	return affected, nil
}

func (s *service) CountForPeriod(ctx context.Context, p period.Period) (int64, error) {
	return s.repo.CountForPeriod(ctx, p.String())
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	return err
}

func mapToResponse(record PayrollRecord) PayrollRecordResponse {
	resp := PayrollRecordResponse{
		ID:              record.ID.String(),
		EmployeeID:      record.EmployeeID.String(),
		EmployeeName:    record.EmployeeName,
		Period:          record.Period,
		BaseSalary:      record.BaseSalary,
		Bonuses:         record.Bonuses,
		TotalDeductions: record.TotalDeductions,
		NetSalary:       record.NetSalary,
		Status:          record.Status,
		CreatedAt:       record.CreatedAt.Format(time.RFC3339),
	}

	if record.PaidAt != nil {
		v := record.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}

	return resp
}

func mapToListResponse(records []PayrollRecord) []PayrollRecordResponse {
	resp := make([]PayrollRecordResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
