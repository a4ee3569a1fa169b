package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxBudget is the largest budget the decisions.next_phase_budget column
// (numeric(14,2)) can hold.
const MaxBudget = 999_999_999_999.99

// ParseBudget normalizes a next-phase budget supplied as a JSON string or
// number. Absent, empty and zero values all mean "no budget" and yield nil.
// Negative, unparseable, out-of-range values and values with more than two
// decimal places are a validation error.
func ParseBudget(v any) (*float64, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *float64:
		if t == nil {
			return nil, nil
		}
		f = *t
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		return parseBudgetString(t.String())
	case string:
		return parseBudgetString(t)
	default:
		return nil, NewValidationError("next_phase_budget", fmt.Sprintf("unsupported type %T", v))
	}
	return checkBudget(f)
}

func parseBudgetString(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, NewValidationError("next_phase_budget", "must be a number")
	}
	return checkBudget(f)
}

func checkBudget(f float64) (*float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, NewValidationError("next_phase_budget", "must be a finite number")
	}
	if f < 0 {
		return nil, NewValidationError("next_phase_budget", "must be a non-negative number")
	}
	if f == 0 {
		return nil, nil
	}
	if f > MaxBudget {
		return nil, NewValidationError("next_phase_budget", "must not exceed 999999999999.99")
	}
	// Cents must be whole; the column would round silently otherwise.
	cents := f * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6*math.Max(1, cents) {
		return nil, NewValidationError("next_phase_budget", "must have at most two decimal places")
	}
	return &f, nil
}
