package payroll_test

import (
	"testing"

	"erp-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNetSalary(t *testing.T) {
	tests := []struct {
		name       string
		base       int64
		bonuses    int64
		deductions int64
		want       int64
	}{
		{"base plus bonus minus deduction", 10000, 2000, 500, 11500},
		{"base only", 5000, 0, 0, 5000},
		{"deductions exceed base floors at zero", 5000, 0, 6000, 0},
		{"exact zero", 3000, 0, 3000, 0},
		{"bonus rescues from negative", 1000, 500, 1200, 300},
		{"all zero", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, payroll.CalculateNetSalary(tc.base, tc.bonuses, tc.deductions))
		})
	}
}

func TestCalculateNetSalary_NeverNegative(t *testing.T) {
	for _, deductions := range []int64{0, 1, 4999, 5000, 5001, 1_000_000} {
		net := payroll.CalculateNetSalary(5000, 0, deductions)
		assert.GreaterOrEqual(t, net, int64(0), "deductions=%d", deductions)
	}
}
