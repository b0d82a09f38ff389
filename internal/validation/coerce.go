package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// stringValue coerces v to a trimmed string. Only genuine strings are
// accepted; numbers are not stringified.
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(s), true
}

// numberValue coerces v to a finite float64. JSON numbers arrive as float64,
// but clients also send numeric strings, which are converted here. ParseFloat
// accepts "NaN" and "Inf", neither of which survives a range check, so
// non-finite values are rejected outright.
func numberValue(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// intValue coerces v to an integer, rejecting fractional values.
func intValue(v any) (int64, bool) {
	f, ok := numberValue(v)
	if !ok || math.Trunc(f) != f {
		return 0, false
	}

	return int64(f), true
}

// objectValue coerces v to a field map.
func objectValue(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)

	return m, ok
}

// arrayValue coerces v to a generic slice.
func arrayValue(v any) ([]any, bool) {
	a, ok := v.([]any)

	return a, ok
}
