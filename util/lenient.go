// Package util provides utility functions for the backend.
package util

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ParseLeniently coerces a field that may be already-parsed JSON, a
// JSON-encoded string, or a plain string. Strings holding JSON objects or
// arrays come back structured; everything else is returned untouched so the
// caller can degrade to raw-string display. Never fails.
func ParseLeniently(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return s
	}

	// Scalars like "123" stay opaque strings: only structured payloads are
	// worth unwrapping.
	switch parsed.(type) {
	case map[string]interface{}, []interface{}:
		return parsed
	default:
		return s
	}
}

// CoerceString renders a leaf value for display. Non-scalar values yield an
// empty string.
func CoerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// CoerceStringSlice renders a leaf value that may be a single string or a
// list of strings.
func CoerceStringSlice(value interface{}) []string {
	switch v := ParseLeniently(value).(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := CoerceString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := CoerceString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// FormatScore renders a CVSS score the way the UI shows it.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}
