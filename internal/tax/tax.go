// Package tax aggregates social contribution, state bracket tax and
// municipal tax for a single annual income.
package tax

import "household-engine/internal/params"

// Input is what the tax calculation needs beyond the parameter table.
type Input struct {
	Income           float64
	MunicipalRate    float64
	SingleParent     bool
	CommuteDeduction float64
}

// Breakdown itemises every intermediate amount of the calculation.
type Breakdown struct {
	SocialContribution    float64 `json:"social_contribution"`
	EmploymentDeduction   float64 `json:"employment_deduction"`
	JobDeduction          float64 `json:"job_deduction"`
	SingleParentDeduction float64 `json:"single_parent_deduction"`
	CommuteDeduction      float64 `json:"commute_deduction"`
	ItemizedDeductions    float64 `json:"itemized_deductions"`
	TaxableBase           float64 `json:"taxable_base"`
	BottomBracketTax      float64 `json:"bottom_bracket_tax"`
	TopBracketTax         float64 `json:"top_bracket_tax"`
	MunicipalTax          float64 `json:"municipal_tax"`
	Total                 float64 `json:"total_tax"`
}

func EmploymentDeduction(p params.TaxParams, income float64) float64 {
	return min(income*p.EmploymentRate, p.EmploymentCap)
}

// JobDeduction only accrues on income above the job-deduction floor.
func JobDeduction(p params.TaxParams, income float64) float64 {
	return min(p.JobRate*max(0, income-p.JobFloor), p.JobCap)
}

func SingleParentDeduction(p params.TaxParams, income float64, singleParent bool) float64 {
	if !singleParent {
		return 0
	}
	return min(income*p.SingleParentRate, p.SingleParentCap)
}

// Calculate computes the full tax breakdown. Itemized deductions only reduce
// the municipal tax base; bracket taxes apply to the taxable base directly.
func Calculate(p params.TaxParams, in Input) Breakdown {
	b := Breakdown{
		SocialContribution:    in.Income * p.SocialContributionRate,
		EmploymentDeduction:   EmploymentDeduction(p, in.Income),
		JobDeduction:          JobDeduction(p, in.Income),
		SingleParentDeduction: SingleParentDeduction(p, in.Income, in.SingleParent),
		CommuteDeduction:      in.CommuteDeduction,
	}
	b.ItemizedDeductions = b.EmploymentDeduction + b.JobDeduction + b.SingleParentDeduction + b.CommuteDeduction

	b.TaxableBase = max(0, in.Income-b.SocialContribution-p.PersonalAllowance)
	b.BottomBracketTax = b.TaxableBase * p.BottomRate
	b.TopBracketTax = max(0, (b.TaxableBase-(p.TopThreshold-p.PersonalAllowance))*p.TopRate)
	b.MunicipalTax = max(0, (b.TaxableBase-b.ItemizedDeductions)*in.MunicipalRate)

	b.Total = b.SocialContribution + b.BottomBracketTax + b.TopBracketTax + b.MunicipalTax
	return b
}
