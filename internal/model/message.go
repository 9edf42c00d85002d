package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Validation codes.
const (
	CodeInvalidIncome          = "INVALID_INCOME"
	CodeUnknownMunicipality    = "UNKNOWN_MUNICIPALITY"
	CodeInvalidChildAge        = "INVALID_CHILD_AGE"
	CodeInvalidHousingCost     = "INVALID_HOUSING_COST"
	CodeHousingCostWithoutRent = "HOUSING_COST_WITHOUT_RENTAL"
	CodeInvalidCommuteDistance = "INVALID_COMMUTE_DISTANCE"
	CodeInvalidCommuteDays     = "INVALID_COMMUTE_DAYS"
	CodeInvalidBridgeCrossings = "INVALID_BRIDGE_CROSSINGS"
	CodeUnknownBridge          = "UNKNOWN_BRIDGE"
	CodeInvalidSweepRange      = "INVALID_SWEEP_RANGE"
)

// Scenario codes.
const (
	CodeUnknownMutation      = "UNKNOWN_MUTATION"
	CodeInvalidProperties    = "INVALID_MUTATION_PROPERTIES"
	CodeChildIndexOutOfRange = "CHILD_INDEX_OUT_OF_RANGE"
	CodeChangesUnavailable   = "CHANGES_UNAVAILABLE"
)
