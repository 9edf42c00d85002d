package model

import json "github.com/goccy/go-json"

// ScenarioRequest applies mutations to a household one at a time and
// recalculates after each.
type ScenarioRequest struct {
	Household Household  `json:"household"`
	Mutations []Mutation `json:"mutations"`
}

type Mutation struct {
	MutationID             string          `json:"mutation_id,omitempty"`
	MutationDefinitionName string          `json:"mutation_definition_name"`
	MutationProperties     json.RawMessage `json:"mutation_properties"`
}

// Change is one RFC 6902 operation between two consecutive results.
type Change struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

type ScenarioStep struct {
	Mutation                  Mutation  `json:"mutation"`
	CalculationMessageIndexes []int     `json:"calculation_message_indexes,omitempty"`
	Household                 Household `json:"household"`
	Result                    *Result   `json:"result,omitempty"`
	Changes                   []Change  `json:"changes"`
}

type ScenarioResponse struct {
	CalculationMetadata CalculationMetadata  `json:"calculation_metadata"`
	Messages            []CalculationMessage `json:"messages"`
	Baseline            *Result              `json:"baseline"`
	Steps               []ScenarioStep       `json:"steps"`
}

// Clone returns a deep copy so mutations never touch the caller's slices or
// maps.
func (h Household) Clone() Household {
	if h.Children != nil {
		h.Children = append([]Child(nil), h.Children...)
	}
	if h.BridgeCrossings != nil {
		bridges := make(map[string]int, len(h.BridgeCrossings))
		for k, v := range h.BridgeCrossings {
			bridges[k] = v
		}
		h.BridgeCrossings = bridges
	}
	return h
}
