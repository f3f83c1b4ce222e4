package dispatch

import "fmt"

// Staged data may have crossed a JSON round-trip (Redis store), which
// turns every number into float64, so the numeric getters accept both.

func strField(data map[string]any, key, def string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return def
}

func intField(data map[string]any, key string, def int) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func floatField(data map[string]any, key string, def float64) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// fieldOrDash renders a staged value for a confirmation prompt, "-"
// when absent.
func fieldOrDash(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return "-"
	}
	if f, isFloat := v.(float64); isFloat && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}

func orDash(v any) string {
	switch n := v.(type) {
	case int:
		if n == 0 {
			return "-"
		}
	case float64:
		if n == 0 {
			return "-"
		}
		if n == float64(int64(n)) {
			return fmt.Sprintf("%d", int64(n))
		}
	}
	return fmt.Sprintf("%v", v)
}

func orDashStr(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
