package model

import "math"

// Child is a dependent child aged 0-17.
type Child struct {
	Age int `json:"age"`
}

// Household is the complete input to a single calculation.
//
// Children are order-sensitive: the daycare subsidy threshold grows with a
// child's position in the slice, so callers must keep a stable order.
type Household struct {
	AnnualIncome              float64        `json:"annual_income"`
	Municipality              string         `json:"municipality"`
	ReceivesStudentGrant      bool           `json:"receives_student_grant"`
	LivesInRental             bool           `json:"lives_in_rental"`
	AnnualHousingCost         float64        `json:"annual_housing_cost"`
	Children                  []Child        `json:"children"`
	IsSingleParent            bool           `json:"is_single_parent"`
	OneWayCommuteKm           float64        `json:"one_way_commute_km"`
	AnnualCommuteDays         int            `json:"annual_commute_days"`
	LivesInRemoteMunicipality bool           `json:"lives_in_remote_municipality"`
	BridgeCrossings           map[string]int `json:"bridge_crossings,omitempty"`
}

// WithIncome returns a copy of the household with a different income. The
// children slice and bridge map are shared, not copied; neither is mutated
// by the engine.
func (h Household) WithIncome(income float64) Household {
	h.AnnualIncome = income
	return h
}

// SweepRange is a half-open income interval [Start, End) visited every Step.
type SweepRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Step  float64 `json:"step"`
}

// DefaultSweepRange covers 100000 up to (not including) 1000000 in steps of
// 1000.
func DefaultSweepRange() SweepRange {
	return SweepRange{Start: 100000, End: 1000000, Step: 1000}
}

// Points returns the number of incomes the range visits.
func (r SweepRange) Points() int {
	if r.Step <= 0 || r.End <= r.Start {
		return 0
	}
	return int(math.Ceil((r.End - r.Start) / r.Step))
}

// Income returns the i-th income of the range.
func (r SweepRange) Income(i int) float64 {
	return r.Start + float64(i)*r.Step
}

type SweepRequest struct {
	Household Household   `json:"household"`
	Range     *SweepRange `json:"range,omitempty"`
}
