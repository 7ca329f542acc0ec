// Package normalize reshapes raw upstream payloads into canonical types.
// The same frontend renders against several backend revisions whose field
// names and nesting drift, so every accessor here falls back through an
// ordered list of known aliases and then to a zero default. Nothing in this
// package returns an error or panics for JSON-shaped input; the worst case
// is an all-zeros, all-empty result.
package normalize

// pickNumber returns the first numeric value found under the given keys,
// else 0. JSON decoding yields float64; canonical maps may carry ints.
func pickNumber(raw map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

// pickString returns the first string value found under the given keys,
// else the empty string.
func pickString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok {
			return s
		}
	}
	return ""
}

// pickStringDefault is pickString with an explicit fallback for fields whose
// canonical default is not empty (e.g. settlement status "pending").
func pickStringDefault(raw map[string]any, fallback string, keys ...string) string {
	if s := pickString(raw, keys...); s != "" {
		return s
	}
	return fallback
}

// pickObjects returns the first list value found under the given keys,
// keeping only object elements, else an empty slice. Non-object entries in
// a drifted payload are skipped rather than failing the whole list.
func pickObjects(raw map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		list, ok := raw[key].([]any)
		if !ok {
			continue
		}
		items := make([]map[string]any, 0, len(list))
		for _, el := range list {
			if obj, ok := el.(map[string]any); ok {
				items = append(items, obj)
			}
		}
		return items
	}
	return []map[string]any{}
}
