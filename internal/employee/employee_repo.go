package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindActive(ctx context.Context) ([]Employee, error)
	FindAll(ctx context.Context, status string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Employee, error) {
	var employees []Employee
	query := r.db.WithContext(ctx).Order("full_name ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}
