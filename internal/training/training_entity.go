package training

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusScheduled = "scheduled"
	SessionStatusOngoing   = "ongoing"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

type Trainer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(120);not null"`

	// Flat per-session rate in the smallest currency unit. Duration-weighted
	// billing is not modelled.
	SessionRate int64 `gorm:"type:bigint;not null;default:0"`

	Status    string `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Trainer   *Trainer  `gorm:"foreignKey:TrainerID;references:ID"`
	Title     string    `gorm:"type:varchar(160);not null"`
	StartDate time.Time `gorm:"type:date;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Session) TableName() string {
	return "training_sessions"
}
