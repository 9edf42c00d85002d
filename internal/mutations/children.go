package mutations

import (
	"fmt"
	"slices"

	"household-engine/internal/model"
)

type addChildProps struct {
	Age int `json:"age"`
	// Position in the children sequence; appended when omitted.
	Position *int `json:"position,omitempty"`
}

type AddChildHandler struct{}

func (h *AddChildHandler) Validate(state *model.Household, mutation *model.Mutation) []model.CalculationMessage {
	var props addChildProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs
	}

	if props.Position != nil && (*props.Position < 0 || *props.Position > len(state.Children)) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeChildIndexOutOfRange,
			Message: fmt.Sprintf("Position %d is outside 0..%d", *props.Position, len(state.Children)),
		}}
	}
	return nil
}

func (h *AddChildHandler) Apply(state *model.Household, mutation *model.Mutation) {
	var props addChildProps
	mustDecode(mutation, &props)

	pos := len(state.Children)
	if props.Position != nil {
		pos = *props.Position
	}
	state.Children = slices.Insert(state.Children, pos, model.Child{Age: props.Age})
}

type removeChildProps struct {
	Index int `json:"index"`
}

type RemoveChildHandler struct{}

func (h *RemoveChildHandler) Validate(state *model.Household, mutation *model.Mutation) []model.CalculationMessage {
	var props removeChildProps
	if msgs := decodeProps(mutation, &props); msgs != nil {
		return msgs
	}

	if props.Index < 0 || props.Index >= len(state.Children) {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeChildIndexOutOfRange,
			Message: fmt.Sprintf("Household has %d children, cannot remove index %d", len(state.Children), props.Index),
		}}
	}
	return nil
}

func (h *RemoveChildHandler) Apply(state *model.Household, mutation *model.Mutation) {
	var props removeChildProps
	mustDecode(mutation, &props)
	state.Children = slices.Delete(state.Children, props.Index, props.Index+1)
}
