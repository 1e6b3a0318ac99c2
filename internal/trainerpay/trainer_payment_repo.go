package trainerpay

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 200

//go:generate mockgen -source=trainer_payment_repo.go -destination=mock/trainer_payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateBatch(ctx context.Context, payments []TrainerPayment) (int, error)
	FindTrainerIDsOverlapping(ctx context.Context, start, end time.Time) (map[uuid.UUID]struct{}, error)
	FindAll(ctx context.Context, filter QueryFilter) ([]TrainerPayment, error)
	FindByID(ctx context.Context, id string) (*TrainerPayment, error)
	Update(ctx context.Context, payment *TrainerPayment) error
	CountOverlapping(ctx context.Context, start, end time.Time) (int64, error)
}

type QueryFilter struct {
	Start  *time.Time
	End    *time.Time
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

func (r *repository) CreateBatch(ctx context.Context, payments []TrainerPayment) (int, error) {
	if len(payments) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&payments, insertBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}

	return int(res.RowsAffected), nil
}

// FindTrainerIDsOverlapping returns trainers that already have a payment
// whose [period_start, period_end] range intersects the given one.
func (r *repository) FindTrainerIDsOverlapping(ctx context.Context, start, end time.Time) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&TrainerPayment{}).
		Where("NOT (period_end < ? OR period_start > ?)", start, end).
		Pluck("trainer_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *repository) FindAll(ctx context.Context, filter QueryFilter) ([]TrainerPayment, error) {
	var payments []TrainerPayment
	query := r.db.WithContext(ctx).
		Table("trainer_payments").
		Select("trainer_payments.*, trainers.full_name AS trainer_name").
		Joins("JOIN trainers ON trainers.id = trainer_payments.trainer_id").
		Order("trainer_payments.period_start DESC, trainers.full_name ASC")

	if filter.Start != nil && filter.End != nil {
		query = query.Where("NOT (trainer_payments.period_end < ? OR trainer_payments.period_start > ?)", *filter.Start, *filter.End)
	}
	if filter.Status != nil {
		query = query.Where("trainer_payments.status = ?", *filter.Status)
	}

	err := query.Scan(&payments).Error
	return payments, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*TrainerPayment, error) {
	var payment TrainerPayment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	return &payment, err
}

func (r *repository) Update(ctx context.Context, payment *TrainerPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *repository) CountOverlapping(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TrainerPayment{}).
		Where("NOT (period_end < ? OR period_start > ?)", start, end).
		Count(&count).Error
	return count, err
}
