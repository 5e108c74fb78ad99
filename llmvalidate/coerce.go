package llmvalidate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Model output is only loosely typed: numbers arrive as strings, ints as
// floats, objects under unexpected keys. These helpers coerce without
// failing; the zero value and a false flag mean "absent or unusable".

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	default:
		return "", false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// clampFloat forces v into [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fieldString fetches a string field, trimmed, under any of the given keys.
func fieldString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := asString(m[k]); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// fieldFloat fetches a numeric field under any of the given keys.
func fieldFloat(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if f, ok := asFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}
