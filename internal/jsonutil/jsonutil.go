// Package jsonutil provides helpers for working with decoded JSON/YAML
// records: context-wrapped unmarshalling and plain-text conversion of the
// loosely typed values found in map[string]any rows.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals a JSON array into a slice.
// An empty array yields an empty (nil) slice and no error.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

// ToString converts a decoded value to its plain text form.
// Whole floats print without a fractional part, lists are joined with ", "
// and nil prints as the empty string.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return ToString(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case []string:
		return strings.Join(val, ", ")
	case []any:
		return strings.Join(Strings(val), ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Strings converts each element of a decoded list to plain text.
func Strings(list []any) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, ToString(item))
	}
	return out
}

// ToFloat converts a decoded numeric value to float64.
// Numeric strings are parsed; anything else reports ok=false.
func ToFloat(v any) (f float64, ok bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	}
	return 0, false
}
