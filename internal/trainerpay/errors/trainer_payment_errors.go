package trainerpayerrors

import (
	"net/http"

	"erp-payroll/internal/shared/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"trainer payment not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid trainer payment status filter",
		http.StatusBadRequest,
	)
)
