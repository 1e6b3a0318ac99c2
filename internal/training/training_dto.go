package training

type GetSessionsFilterRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type TrainerResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	SessionRate int64  `json:"session_rate"`
	Status      string `json:"status"`
}

type SessionResponse struct {
	ID        string `json:"id"`
	TrainerID string `json:"trainer_id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	Status    string `json:"status"`
}
