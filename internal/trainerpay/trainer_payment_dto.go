package trainerpay

type GetTrainerPaymentsFilterRequest struct {
	Period string `form:"period"`
	Status string `form:"status" binding:"omitempty,oneof=pending paid"`
}

type TrainerPaymentResponse struct {
	ID           string `json:"id"`
	TrainerID    string `json:"trainer_id"`
	TrainerName  string `json:"trainer_name,omitempty"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	SessionCount int    `json:"session_count"`
	Amount       int64  `json:"amount"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}
