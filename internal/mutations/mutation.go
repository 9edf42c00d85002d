package mutations

import "household-engine/internal/model"

// MutationHandler defines the contract for all mutation implementations.
// Validate checks the mutation properties against the current household;
// Apply is only called when Validate returned no critical message. Whether
// the resulting household is a valid calculation input is checked by the
// engine afterwards.
type MutationHandler interface {
	Validate(state *model.Household, mutation *model.Mutation) []model.CalculationMessage
	Apply(state *model.Household, mutation *model.Mutation)
}
