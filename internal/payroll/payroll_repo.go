package payroll

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 200

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *PayrollRecord) error
	CreateBatch(ctx context.Context, records []PayrollRecord) (int, error)
	FindEmployeeIDsForPeriod(ctx context.Context, periodKey string) (map[uuid.UUID]struct{}, error)
	FindAll(ctx context.Context, filter QueryFilter) ([]PayrollRecord, error)
	FindByID(ctx context.Context, id string) (*PayrollRecord, error)
	Update(ctx context.Context, record *PayrollRecord) error
	BulkUpdateStatus(ctx context.Context, periodKey, fromStatus, toStatus string, paidAt time.Time) (int64, error)
	CountForPeriod(ctx context.Context, periodKey string) (int64, error)
}

type QueryFilter struct {
	Period *string
	Status *string
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, record *PayrollRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// CreateBatch inserts in chunks with ON CONFLICT DO NOTHING on the
// (employee_id, period) unique index, so a concurrent generation run for the
// same period silently loses the race instead of failing. The returned count
// is the number of rows actually inserted.
func (r *repository) CreateBatch(ctx context.Context, records []PayrollRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&records, insertBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}

func (r *repository) FindEmployeeIDsForPeriod(ctx context.Context, periodKey string) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Where("period = ?", periodKey).
		Pluck("employee_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *repository) FindAll(ctx context.Context, filter QueryFilter) ([]PayrollRecord, error) {
	var records []PayrollRecord
	query := r.db.WithContext(ctx).
		Table("payroll_records").
		Select("payroll_records.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = payroll_records.employee_id").
		Order("payroll_records.period DESC, employees.full_name ASC")

	if filter.Period != nil {
		query = query.Where("payroll_records.period = ?", *filter.Period)
	}
	if filter.Status != nil {
		query = query.Where("payroll_records.status = ?", *filter.Status)
	}

	err := query.Scan(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollRecord, error) {
	var record PayrollRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	return &record, err
}

func (r *repository) Update(ctx context.Context, record *PayrollRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *repository) BulkUpdateStatus(ctx context.Context, periodKey, fromStatus, toStatus string, paidAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Where("period = ?", periodKey).
		Where("status = ?", fromStatus).
		Updates(map[string]any{
			"status":  toStatus,
			"paid_at": paidAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountForPeriod(ctx context.Context, periodKey string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Where("period = ?", periodKey).
		Count(&count).Error
	return count, err
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error
// (code 23505), e.g. from racing inserts on uq_payroll_employee_period.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
