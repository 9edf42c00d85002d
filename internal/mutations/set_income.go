package mutations

import "household-engine/internal/model"

type setIncomeProps struct {
	AnnualIncome float64 `json:"annual_income"`
}

type SetIncomeHandler struct{}

func (h *SetIncomeHandler) Validate(state *model.Household, mutation *model.Mutation) []model.CalculationMessage {
	var props setIncomeProps
	return decodeProps(mutation, &props)
}

func (h *SetIncomeHandler) Apply(state *model.Household, mutation *model.Mutation) {
	var props setIncomeProps
	mustDecode(mutation, &props)
	state.AnnualIncome = props.AnnualIncome
}
