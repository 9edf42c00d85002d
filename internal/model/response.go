package model

import "household-engine/internal/tax"

// Result is the outcome of one household calculation. All amounts are
// annual.
type Result struct {
	GrossIncome                   float64       `json:"gross_income"`
	NetIncome                     float64       `json:"net_income"`
	EffectiveTaxRatePct           float64       `json:"effective_tax_rate_pct"`
	StudentGrant                  float64       `json:"student_grant"`
	ChildBenefit                  float64       `json:"child_benefit"`
	HousingBenefit                float64       `json:"housing_benefit"`
	DaycareSubsidy                float64       `json:"daycare_subsidy"`
	RentSupport                   float64       `json:"rent_support"`
	CommuteDeduction              float64       `json:"commute_deduction"`
	TaxSavingFromCommuteDeduction float64       `json:"tax_saving_from_commute_deduction"`
	TotalTax                      float64       `json:"total_tax"`
	Tax                           tax.Breakdown `json:"tax"`
}

// Benefits returns the sum of all benefit amounts.
func (r *Result) Benefits() float64 {
	return r.StudentGrant + r.ChildBenefit + r.HousingBenefit + r.DaycareSubsidy + r.RentSupport
}

// SweepPoint is one income level of an income sweep. MarginalTaxRatePct is
// 0 for the first point of a sweep.
type SweepPoint struct {
	Income              float64 `json:"income"`
	NetIncome           float64 `json:"net_income"`
	EffectiveTaxRatePct float64 `json:"effective_tax_rate_pct"`
	MarginalTaxRatePct  float64 `json:"marginal_tax_rate_pct"`
}

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Result              *Result              `json:"result"`
}

type SweepResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Range               SweepRange           `json:"range"`
	Points              []SweepPoint         `json:"points"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	ParameterYear          int    `json:"parameter_year"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type MunicipalityInfo struct {
	Name        string             `json:"name"`
	TaxRatePct  float64            `json:"tax_rate_pct"`
	DaycareFees map[string]float64 `json:"daycare_fees"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
