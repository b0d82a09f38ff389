package docstore

import "time"

// Field readers tolerant of the loosely typed maps a document store hands
// back. Missing or mistyped fields yield zero values rather than errors.

func asString(v any) string {
	s, _ := v.(string)

	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asTime(v any) time.Time {
	t, _ := v.(time.Time)

	return t
}

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)

	return m
}

func asStringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return append([]string(nil), items...)
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return []string{}
	}
}

func asObjectSlice(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}

	return out
}
