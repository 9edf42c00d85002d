package benefits

import "household-engine/internal/params"

// StudentGrant returns the annual student grant for an eligible recipient.
func StudentGrant(p params.StudentGrantParams, income float64, eligible bool) float64 {
	if !eligible {
		return 0
	}
	if income < p.IncomeThreshold {
		return p.LowIncomeAmount
	}
	return p.BaseAmount
}

// HousingAllowance returns the flat, income-tiered housing allowance.
func HousingAllowance(p params.HousingAllowanceParams, income float64, eligible bool) float64 {
	if !eligible {
		return 0
	}
	switch {
	case income < p.LowThreshold:
		return p.LowAmount
	case income < p.HighThreshold:
		return p.HighAmount
	default:
		return 0
	}
}
