package benefits

import (
	"math"

	"household-engine/internal/model"
	"household-engine/internal/params"
)

// DaycareBand maps a child's age to its daycare fee band. School-age
// children have no band.
func DaycareBand(age int) (string, bool) {
	switch {
	case age <= 2:
		return params.BandToddler, true
	case age <= 5:
		return params.BandPreschool, true
	default:
		return "", false
	}
}

// DaycareSubsidy returns the annual daycare fee subsidy across all children
// in a daycare band.
//
// The income threshold for each child grows with its position in the
// children slice (the first child gets no increment), so callers must pass
// children in a stable order. Reordering children changes the result.
// School-age children hold a position but receive nothing.
func DaycareSubsidy(p params.DaycareParams, income float64, children []model.Child, m params.Municipality, singleParent bool) float64 {
	surcharge := 0.0
	if singleParent {
		surcharge = p.SingleParentSurcharge
	}

	var total float64
	for i, c := range children {
		band, ok := DaycareBand(c.Age)
		if !ok {
			continue
		}
		fee := m.DaycareFees[band]

		threshold := p.BaseThreshold + surcharge + float64(i)*p.PerChildIncrement
		total += fee * (1 - CoPayment(p, income, threshold))
	}
	return total
}

// CoPayment returns the share of the fee the household pays: the base
// share plus one step per full IncomeStep above threshold, capped at 100%.
func CoPayment(p params.DaycareParams, income, threshold float64) float64 {
	steps := math.Floor(max(0, income-threshold) / p.IncomeStep)
	return min(p.BaseCoPayment+steps*p.CoPaymentPerStep, 1)
}
