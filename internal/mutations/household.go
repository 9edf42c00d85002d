package mutations

import "household-engine/internal/model"

type moveMunicipalityProps struct {
	Municipality string `json:"municipality"`
}

type MoveMunicipalityHandler struct{}

func (h *MoveMunicipalityHandler) Validate(state *model.Household, mutation *model.Mutation) []model.CalculationMessage {
	var props moveMunicipalityProps
	return decodeProps(mutation, &props)
}

func (h *MoveMunicipalityHandler) Apply(state *model.Household, mutation *model.Mutation) {
	var props moveMunicipalityProps
	mustDecode(mutation, &props)
	state.Municipality = props.Municipality
}

type setHousingProps struct {
	LivesInRental     bool    `json:"lives_in_rental"`
	AnnualHousingCost float64 `json:"annual_housing_cost"`
}

type SetHousingHandler struct{}

func (h *SetHousingHandler) Validate(state *model.Household, mutation *model.Mutation) []model.CalculationMessage {
	var props setHousingProps
	return decodeProps(mutation, &props)
}

// Apply drops the housing cost when the household stops renting, since only
// renters may carry one.
func (h *SetHousingHandler) Apply(state *model.Household, mutation *model.Mutation) {
	var props setHousingProps
	mustDecode(mutation, &props)

	state.LivesInRental = props.LivesInRental
	state.AnnualHousingCost = props.AnnualHousingCost
	if !props.LivesInRental {
		state.AnnualHousingCost = 0
	}
}
