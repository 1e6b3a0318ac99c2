package employee

type GetEmployeesFilterRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary int64  `json:"base_salary"`
	JoinDate   string `json:"join_date"`
	Status     string `json:"status"`
}
