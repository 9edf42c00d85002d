package engine

import (
	"time"

	"github.com/google/uuid"

	"household-engine/internal/benefits"
	"household-engine/internal/model"
	"household-engine/internal/params"
	"household-engine/internal/tax"
)

const defaultSweepWorkers = 4

// Engine computes household results against one parameter table. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	params       *params.Table
	sweepWorkers int
}

type Option func(*Engine)

// WithSweepWorkers bounds the number of goroutines an income sweep uses.
func WithSweepWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.sweepWorkers = n
		}
	}
}

func New(table *params.Table, opts ...Option) *Engine {
	e := &Engine{params: table, sweepWorkers: defaultSweepWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Params() *params.Table {
	return e.params
}

// Calculate validates the household and computes its result. On invalid
// input it returns a *ValidationError and no result.
func (e *Engine) Calculate(h model.Household) (*model.Result, error) {
	msgs := e.Validate(h)
	if hasCritical(msgs) {
		return nil, &ValidationError{Messages: numbered(msgs)}
	}
	return e.calculate(h), nil
}

// calculate assumes a validated household.
func (e *Engine) calculate(h model.Household) *model.Result {
	p := e.params
	m, _ := p.Municipality(h.Municipality)
	income := h.AnnualIncome

	commute := benefits.CommuteDeduction(p.Commute, h.OneWayCommuteKm, h.AnnualCommuteDays,
		h.LivesInRemoteMunicipality, h.BridgeCrossings)

	r := &model.Result{
		StudentGrant:     benefits.StudentGrant(p.StudentGrant, income, h.ReceivesStudentGrant),
		ChildBenefit:     benefits.ChildBenefit(p.ChildBenefit, income, h.Children),
		HousingBenefit:   benefits.HousingAllowance(p.Housing, income, true),
		DaycareSubsidy:   benefits.DaycareSubsidy(p.Daycare, income, h.Children, m, h.IsSingleParent),
		CommuteDeduction: commute,
	}
	if h.LivesInRental {
		r.RentSupport = benefits.RentSupport(p.RentSupport, income, h.AnnualHousingCost, len(h.Children), len(h.Children) > 0)
	}

	r.Tax = tax.Calculate(p.Tax, tax.Input{
		Income:           income,
		MunicipalRate:    m.TaxRate(),
		SingleParent:     h.IsSingleParent,
		CommuteDeduction: r.CommuteDeduction,
	})
	r.TotalTax = r.Tax.Total
	r.TaxSavingFromCommuteDeduction = r.CommuteDeduction * m.TaxRate()

	r.GrossIncome = income + r.Benefits()
	r.NetIncome = r.GrossIncome - r.TotalTax
	if r.GrossIncome > 0 {
		r.EffectiveTaxRatePct = r.TotalTax / r.GrossIncome * 100
	}
	return r
}

// Process runs Calculate and wraps the outcome with calculation metadata
// and any validation messages.
func (e *Engine) Process(h model.Household) *model.CalculationResponse {
	start := time.Now()

	msgs := numbered(e.Validate(h))
	outcome := model.OutcomeSuccess
	var result *model.Result
	if hasCritical(msgs) {
		outcome = model.OutcomeFailure
	} else {
		result = e.calculate(h)
	}

	return &model.CalculationResponse{
		CalculationMetadata: e.metadata(start, outcome),
		Messages:            msgs,
		Result:              result,
	}
}

func (e *Engine) metadata(start time.Time, outcome string) model.CalculationMetadata {
	elapsed := time.Since(start)
	now := time.Now().UTC()

	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		ParameterYear:          e.params.Year,
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     outcome,
	}
}
