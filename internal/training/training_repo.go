package training

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	FindCompletedSessionsBetween(ctx context.Context, start, end time.Time) ([]Session, error)
	FindSessions(ctx context.Context, filter SessionFilter) ([]Session, error)
	FindTrainers(ctx context.Context) ([]Trainer, error)
	FindTrainerByID(ctx context.Context, id string) (*Trainer, error)
}

type SessionFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCompletedSessionsBetween(ctx context.Context, start, end time.Time) ([]Session, error) {
	var sessions []Session
	err := r.db.WithContext(ctx).
		Where("status = ?", SessionStatusCompleted).
		Where("start_date BETWEEN ? AND ?", start, end).
		Find(&sessions).Error
	return sessions, err
}

func (r *repository) FindSessions(ctx context.Context, filter SessionFilter) ([]Session, error) {
	var sessions []Session
	query := r.db.WithContext(ctx).Order("start_date DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("start_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_date <= ?", *filter.To)
	}

	err := query.Find(&sessions).Error
	return sessions, err
}

func (r *repository) FindTrainers(ctx context.Context) ([]Trainer, error) {
	var trainers []Trainer
	err := r.db.WithContext(ctx).Order("full_name ASC").Find(&trainers).Error
	return trainers, err
}

func (r *repository) FindTrainerByID(ctx context.Context, id string) (*Trainer, error) {
	var trainer Trainer
	err := r.db.WithContext(ctx).First(&trainer, "id = ?", id).Error
	return &trainer, err
}
