package engine

import (
	"errors"
	"strings"

	"household-engine/internal/model"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError carries every critical finding of a rejected input.
type ValidationError struct {
	Messages []model.CalculationMessage
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		if m.Level == model.LevelCritical {
			parts = append(parts, m.Code+": "+m.Message)
		}
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
