package events

import "time"

const PayrollGeneratedTopic = "erp.payroll.generated.v1"

type PayrollGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	Period        string    `json:"period"`
	EmployeeCount int       `json:"employee_count"`
	TrainerCount  int       `json:"trainer_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
