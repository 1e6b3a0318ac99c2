package trainerpay

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// TrainerPayment is keyed by the month's date range rather than a YYYY-MM
// string, so duplicate detection works by range overlap instead of an
// exact period match.
type TrainerPayment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrainerID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_trainer_payment_period"`
	Trainer   *PaymentTrainer `gorm:"foreignKey:TrainerID;references:ID"`

	PeriodStart time.Time `gorm:"type:date;not null;uniqueIndex:uq_trainer_payment_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null;uniqueIndex:uq_trainer_payment_period"`

	SessionCount int `gorm:"not null;default:0"`

	// session_count x the trainer's flat per-session rate, smallest unit.
	Amount int64 `gorm:"type:bigint;not null;default:0"`

	Status    string `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	TrainerName string `gorm:"->;-:migration"` // populated by list joins only
}

type PaymentTrainer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (PaymentTrainer) TableName() string {
	return "trainers"
}
