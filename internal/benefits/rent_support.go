package benefits

import (
	"math"

	"household-engine/internal/params"
)

// RentSupport returns the annual rent support for a renting household.
//
// Support is 60% of the housing cost less 18% of income above the
// child-adjusted limit, capped at the annual maximum (or 15% of the housing
// cost when no child under 18 lives in the household). It is withheld
// entirely when the monthly amount falls below MinMonthly or the housing
// cost left after support falls below MinResidualHousingCost. Payment is
// whole kroner per month, so the monthly amount is rounded before it is
// annualised.
func RentSupport(p params.RentSupportParams, income, housingCost float64, numChildren int, hasChildUnder18 bool) float64 {
	limit := p.BaseIncomeLimit + float64(max(0, numChildren-1))*p.ExtraPerChild
	excess := max(0, income-limit) * p.ExcessRate

	support := p.HousingShare*housingCost - excess

	limitCap := p.AnnualCap
	if !hasChildUnder18 {
		limitCap = min(limitCap, housingCost*p.NoChildCapShare)
	}
	support = min(support, limitCap)

	if support/12 < p.MinMonthly || housingCost-support < p.MinResidualHousingCost {
		return 0
	}
	return math.RoundToEven(support/12) * 12
}
