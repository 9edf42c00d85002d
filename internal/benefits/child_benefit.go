package benefits

import (
	"household-engine/internal/model"
	"household-engine/internal/params"
)

// ChildBenefit sums the age-banded benefit for every child and subtracts
// the income phase-out. The result is never negative.
func ChildBenefit(p params.ChildBenefitParams, income float64, children []model.Child) float64 {
	var total float64
	for _, c := range children {
		total += childBenefitFor(p.Bands, c.Age)
	}

	phaseOut := max(0, income-p.PhaseOutThreshold) * p.PhaseOutRate
	return max(0, total-phaseOut)
}

func childBenefitFor(bands []params.AgeBand, age int) float64 {
	var amount float64
	for _, b := range bands {
		if age >= b.MinAge && age <= b.MaxAge {
			amount += b.Amount
		}
	}
	return amount
}
