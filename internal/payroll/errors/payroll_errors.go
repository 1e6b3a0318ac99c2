package payrollerrors

import (
	"net/http"

	"erp-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll record not found",
		http.StatusNotFound,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"bonuses and deductions cannot be negative",
		http.StatusBadRequest,
	)
	ErrPaidRecordLocked = apperror.New(
		apperror.CodeInvalidState,
		"amounts of a paid record cannot be edited",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll status filter",
		http.StatusBadRequest,
	)
)
