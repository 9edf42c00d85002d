package engine

import (
	"fmt"
	"math"
	"sort"

	"household-engine/internal/benefits"
	"household-engine/internal/model"
)

const (
	maxChildAge        = 17
	maxCommuteDays     = 366
	maxOneWayCommuteKm = 1000
	maxSweepPoints     = 10000
)

// Validate checks a household against the input contract and returns every
// finding. Inputs are rejected rather than clamped; a household is usable
// only when no CRITICAL message is returned. Unknown bridge ids are only a
// warning.
func (e *Engine) Validate(h model.Household) []model.CalculationMessage {
	var msgs []model.CalculationMessage

	if !finiteNonNegative(h.AnnualIncome) {
		msgs = append(msgs, critical(model.CodeInvalidIncome,
			fmt.Sprintf("Annual income must be a non-negative amount, got %v", h.AnnualIncome)))
	}

	if _, ok := e.params.Municipality(h.Municipality); !ok {
		msgs = append(msgs, critical(model.CodeUnknownMunicipality,
			fmt.Sprintf("Unknown municipality: %q", h.Municipality)))
	}

	for i, c := range h.Children {
		if c.Age < 0 || c.Age > maxChildAge {
			msgs = append(msgs, critical(model.CodeInvalidChildAge,
				fmt.Sprintf("Child %d has age %d, must be between 0 and %d", i+1, c.Age, maxChildAge)))
		}
	}

	if !finiteNonNegative(h.AnnualHousingCost) {
		msgs = append(msgs, critical(model.CodeInvalidHousingCost,
			fmt.Sprintf("Annual housing cost must be a non-negative amount, got %v", h.AnnualHousingCost)))
	} else if !h.LivesInRental && h.AnnualHousingCost != 0 {
		msgs = append(msgs, critical(model.CodeHousingCostWithoutRent,
			"Annual housing cost must be 0 when the household does not rent"))
	}

	if !finiteNonNegative(h.OneWayCommuteKm) || h.OneWayCommuteKm > maxOneWayCommuteKm {
		msgs = append(msgs, critical(model.CodeInvalidCommuteDistance,
			fmt.Sprintf("Commute distance must be between 0 and %d km, got %v", maxOneWayCommuteKm, h.OneWayCommuteKm)))
	}

	if h.AnnualCommuteDays < 0 || h.AnnualCommuteDays > maxCommuteDays {
		msgs = append(msgs, critical(model.CodeInvalidCommuteDays,
			fmt.Sprintf("Annual commute days must be between 0 and %d, got %d", maxCommuteDays, h.AnnualCommuteDays)))
	}

	// sorted for deterministic message order
	bridges := make([]string, 0, len(h.BridgeCrossings))
	for id := range h.BridgeCrossings {
		bridges = append(bridges, id)
	}
	sort.Strings(bridges)
	for _, id := range bridges {
		count := h.BridgeCrossings[id]
		if count < 0 {
			msgs = append(msgs, critical(model.CodeInvalidBridgeCrossings,
				fmt.Sprintf("Bridge crossings for %s must be non-negative, got %d", id, count)))
			continue
		}
		if !benefits.KnownBridge(e.params.Commute, id) {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    model.CodeUnknownBridge,
				Message: fmt.Sprintf("Bridge %s has no surcharge and is ignored", id),
			})
		}
	}

	return msgs
}

// validateRange bounds the point count in float64 so an oversized range is
// rejected before it is converted to a slice length.
func validateRange(r model.SweepRange) []model.CalculationMessage {
	if !finiteNonNegative(r.Start) || !finiteNonNegative(r.End) || !finiteNonNegative(r.Step) ||
		r.Step == 0 || r.End <= r.Start {
		return []model.CalculationMessage{critical(model.CodeInvalidSweepRange,
			fmt.Sprintf("Sweep range must satisfy 0 <= start < end and step > 0, got start=%v end=%v step=%v", r.Start, r.End, r.Step))}
	}
	if n := math.Ceil((r.End - r.Start) / r.Step); n > maxSweepPoints {
		return []model.CalculationMessage{critical(model.CodeInvalidSweepRange,
			fmt.Sprintf("Sweep range visits %v incomes, at most %d allowed", n, maxSweepPoints))}
	}
	return nil
}

func hasCritical(msgs []model.CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return true
		}
	}
	return false
}

func critical(code, message string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    code,
		Message: message,
	}
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// numbered assigns message IDs in order.
func numbered(msgs []model.CalculationMessage) []model.CalculationMessage {
	if msgs == nil {
		return []model.CalculationMessage{}
	}
	for i := range msgs {
		msgs[i].ID = i
	}
	return msgs
}
