package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type PayrollRecord struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	// Canonical YYYY-MM month key. The unique index with employee_id is the
	// authoritative duplicate guard; the generator's pre-check is only a
	// fast path.
	Period string `gorm:"type:varchar(7);not null;uniqueIndex:uq_payroll_employee_period;index"`

	// Amounts in the smallest currency unit. base_salary is a snapshot of
	// the roster value at generation time.
	BaseSalary      int64 `gorm:"type:bigint;not null;default:0"`
	Bonuses         int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeductions int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary       int64 `gorm:"type:bigint;not null;default:0"`

	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidAt    *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeName string `gorm:"->;-:migration"` // populated by list joins only
}

// PayrollEmployee is the narrow projection of the roster row needed for
// eager loading; the full entity lives in the employee package.
type PayrollEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}
