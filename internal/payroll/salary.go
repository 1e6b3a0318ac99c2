package payroll

// CalculateNetSalary returns base salary plus bonuses minus deductions,
// floored at zero: a salary can never register as negative. Amounts are
// integers in the smallest currency unit, so there is no floating-point
// rounding and no non-finite input to worry about.
func CalculateNetSalary(baseSalary, bonuses, deductions int64) int64 {
	net := baseSalary + bonuses - deductions
	if net < 0 {
		return 0
	}
	return net
}
