// Package normalize coerces loosely-typed vendor values into Go types.
//
// Play-by-play feeds are inconsistent: flags arrive as 0/1, "1" or true, ids as
// numbers or strings. Every function here is total: unrecognized input maps to
// the zero value and an ok=false where that distinction matters.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number returns the numeric value of v. Booleans map to 0/1 and numeric
// strings are parsed after trimming. ok is false for nil, empty or
// non-numeric input, and for NaN/Inf.
func Number(v any) (float64, bool) {
	var f float64
	switch typed := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = typed
	case float32:
		f = float64(typed)
	case int:
		f = float64(typed)
	case int32:
		f = float64(typed)
	case int64:
		f = float64(typed)
	case uint:
		f = float64(typed)
	case uint32:
		f = float64(typed)
	case uint64:
		f = float64(typed)
	case bool:
		if typed {
			return 1, true
		}
		return 0, true
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(typed)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
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

// Int returns Number(v) truncated toward zero, or 0.
func Int(v any) int64 {
	f, ok := Number(v)
	if !ok {
		return 0
	}
	return int64(f)
}

// Flag reports whether v is equivalent to 1. "true"/"false" strings are
// accepted alongside the numeric forms.
func Flag(v any) bool {
	if s, ok := v.(string); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b
		}
	}
	f, ok := Number(v)
	return ok && f == 1
}

// Positive reports whether v normalizes to a number greater than zero.
func Positive(v any) bool {
	f, ok := Number(v)
	return ok && f > 0
}

// Text returns the string form of v. Numbers are formatted without a
// trailing fraction when integral; nil yields "".
func Text(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case json.Number:
		return typed.String()
	}
	if f, ok := Number(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// Strings returns the string elements of a decoded JSON array.
func Strings(v any) []string {
	switch typed := v.(type) {
	case []string:
		return append([]string(nil), typed...)
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s := Text(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// OptionalNumber returns a pointer to the numeric value of v, or nil.
func OptionalNumber(v any) *float64 {
	f, ok := Number(v)
	if !ok {
		return nil
	}
	return &f
}

// Timestamp parses an RFC3339 wall-clock value, fractional seconds allowed.
// ok is false when value is empty or unparsable.
func Timestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
