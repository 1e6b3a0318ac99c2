package employee

import (
	"context"
	"errors"
	"net/http"

	"erp-payroll/internal/shared/apperror"

	"gorm.io/gorm"
)

var ErrEmployeeNotFound = apperror.New(
	apperror.CodeNotFound,
	"employee not found",
	http.StatusNotFound,
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, filter.Status)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID.String(),
		FullName:   emp.FullName,
		Department: emp.Department,
		Position:   emp.Position,
		BaseSalary: emp.BaseSalary,
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
		Status:     emp.Status,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		res[i] = mapToResponse(emp)
	}
	return res
}
