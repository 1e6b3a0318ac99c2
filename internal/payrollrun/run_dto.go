package payrollrun

type GenerateRunRequest struct {
	Period string `json:"period" binding:"required"`
}

type RunSummaryResponse struct {
	Period        string `json:"period"`
	EmployeeCount int    `json:"employee_count"`
	TrainerCount  int    `json:"trainer_count"`
	Generated     bool   `json:"generated"`
	Message       string `json:"message"`
}
