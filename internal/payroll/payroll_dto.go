package payroll

type GetPayrollsFilterRequest struct {
	Period string `form:"period"`
	Status string `form:"status" binding:"omitempty,oneof=pending paid"`
}

// UpdatePayrollAmountsRequest uses pointers so an explicit zero survives the
// required check; a cleared bonus is a legitimate correction.
type UpdatePayrollAmountsRequest struct {
	Bonuses         *int64 `json:"bonuses" binding:"required,gte=0"`
	TotalDeductions *int64 `json:"total_deductions" binding:"required,gte=0"`
}

type PayAllPendingRequest struct {
	Period string `json:"period" binding:"required"`
}

type PayrollRecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Period          string  `json:"period"`
	BaseSalary      int64   `json:"base_salary"`
	Bonuses         int64   `json:"bonuses"`
	TotalDeductions int64   `json:"total_deductions"`
	NetSalary       int64   `json:"net_salary"`
	Status          string  `json:"status"`
	PaidAt          *string `json:"paid_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type PayAllPendingResponse struct {
	Period    string `json:"period"`
	PaidCount int64  `json:"paid_count"`
}
