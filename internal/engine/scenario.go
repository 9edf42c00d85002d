package engine

import (
	"fmt"
	"time"

	"household-engine/internal/jsonpatch"
	"household-engine/internal/model"
	"household-engine/internal/mutations"
)

// ProcessScenario calculates a baseline household, then applies each
// mutation in order and recalculates. Every step reports its result and the
// changes relative to the previous result. Processing stops at the first
// critical message; steps already applied are kept.
func (e *Engine) ProcessScenario(req model.ScenarioRequest) *model.ScenarioResponse {
	start := time.Now()

	resp := &model.ScenarioResponse{Steps: []model.ScenarioStep{}}
	var allMessages []model.CalculationMessage
	record := func(msgs []model.CalculationMessage) ([]int, bool) {
		var indexes []int
		critical := false
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			indexes = append(indexes, m.ID)
			if m.Level == model.LevelCritical {
				critical = true
			}
		}
		return indexes, critical
	}

	state := req.Household.Clone()
	_, failed := record(e.Validate(state))
	if !failed {
		resp.Baseline = e.calculate(state)
	}

	prev := resp.Baseline
	for i := 0; i < len(req.Mutations) && !failed; i++ {
		mut := req.Mutations[i]
		step := model.ScenarioStep{Mutation: mut, Household: state, Changes: []model.Change{}}

		handler, ok := mutations.Get(mut.MutationDefinitionName)
		if !ok {
			step.CalculationMessageIndexes, failed = record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownMutation,
				Message: fmt.Sprintf("Unknown mutation: %s", mut.MutationDefinitionName),
			}})
			resp.Steps = append(resp.Steps, step)
			break
		}

		next := state.Clone()
		step.CalculationMessageIndexes, failed = record(handler.Validate(&next, &mut))
		if !failed {
			handler.Apply(&next, &mut)
			var idx []int
			idx, failed = record(e.Validate(next))
			step.CalculationMessageIndexes = append(step.CalculationMessageIndexes, idx...)
		}
		if failed {
			resp.Steps = append(resp.Steps, step)
			break
		}

		state = next
		res := e.calculate(state)
		changes, warnings := diffStep(prev, res)
		step.Changes = changes
		idx, _ := record(warnings)
		step.CalculationMessageIndexes = append(step.CalculationMessageIndexes, idx...)
		step.Household = state
		step.Result = res
		resp.Steps = append(resp.Steps, step)
		prev = res
	}

	outcome := model.OutcomeSuccess
	if failed {
		outcome = model.OutcomeFailure
	}
	resp.Messages = numbered(allMessages)
	resp.CalculationMetadata = e.metadata(start, outcome)
	return resp
}

// diffStep returns the changes between two results. A diff failure leaves the
// step without changes and is reported as a warning.
func diffStep(prev, next any) ([]model.Change, []model.CalculationMessage) {
	changes, err := jsonpatch.DiffValues(prev, next)
	if err != nil {
		return []model.Change{}, []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    model.CodeChangesUnavailable,
			Message: fmt.Sprintf("Changes could not be computed: %v", err),
		}}
	}
	if changes == nil {
		changes = []model.Change{}
	}
	return changes, nil
}
