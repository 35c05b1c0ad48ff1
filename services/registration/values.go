package registration

import "strconv"

// The form model holds heterogeneous values (strings, string lists, bools,
// numbers) that round-trip through JSON, so lists arrive as []any and numbers
// as float64. These coercions are the only place that shape is normalized.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringList coerces a value to a string slice. The second return reports
// whether the value was list-shaped at all.
func asStringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case nil:
		return nil, true
	default:
		return nil, false
	}
}

// asNumber coerces a value to a float64. The second return reports whether a
// numeric value was present; empty strings and nil are "absent", not zero.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if n == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// normalizeValue flattens JSON-decoded shapes so stored values stay canonical:
// []any of strings becomes []string, everything else passes through.
func normalizeValue(v any) any {
	if list, ok := v.([]any); ok {
		if strs, isStrs := asStringList(list); isStrs {
			return strs
		}
	}
	return v
}
