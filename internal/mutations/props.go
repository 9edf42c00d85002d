package mutations

import (
	json "github.com/goccy/go-json"

	"household-engine/internal/model"
)

// decodeProps unmarshals mutation properties, reporting malformed input as
// a critical message.
func decodeProps(mutation *model.Mutation, v any) []model.CalculationMessage {
	if err := json.Unmarshal(mutation.MutationProperties, v); err != nil {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeInvalidProperties,
			Message: "Invalid properties for " + mutation.MutationDefinitionName + ": " + err.Error(),
		}}
	}
	return nil
}

// mustDecode is used by Apply after Validate has accepted the properties.
func mustDecode(mutation *model.Mutation, v any) {
	_ = json.Unmarshal(mutation.MutationProperties, v)
}
