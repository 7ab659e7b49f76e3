package data

import (
	"math"
	"strconv"
	"strings"
)

// Source is a read-only view of instrument or process data.
type Source interface {
	// Get returns the current value of ref, or nil.
	Get(ref string) any
	// GetBool reports the truth of ref's value.
	GetBool(ref string) bool
	// GetMin returns the lower bound of ref's range.
	GetMin(ref string) float64
	// GetMax returns the upper bound of ref's range.
	GetMax(ref string) float64
	// GetValueList returns the list of values of ref, such as button
	// labels.
	GetValueList(ref string) []string
}

// Float converts a data value to a number. Strings are parsed; booleans
// map to 0 and 1.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Int converts a data value to an integer, truncating toward zero.
func Int(v any) (int, bool) {
	f, ok := Float(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// Bool reports the truth of a data value. Nil, false, zero, and the
// strings "", "0" and "false" are false.
func Bool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		return s != "" && s != "0" && s != "false"
	}
	f, ok := Float(v)
	return ok && f != 0
}

// Format renders a data value as display text. Numbers use the shortest
// representation that round-trips.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case []string:
		return strings.Join(x, ", ")
	}
	if f, ok := Float(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
