package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is the payroll-eligible roster row. This service only ever reads
// it; ownership lives with the HR system.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName   string    `gorm:"type:varchar(120);not null"`
	Department string    `gorm:"type:varchar(80);not null;index"`
	Position   string    `gorm:"type:varchar(80);not null"`

	// Smallest currency unit, matching payroll_records.base_salary.
	BaseSalary int64 `gorm:"type:bigint;not null;default:0"`

	JoinDate  time.Time `gorm:"type:date;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
