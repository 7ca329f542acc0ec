// Package pagination derives a complete pagination metadata block from the
// assorted shapes the upstream API has used over time: a nested meta object,
// flat counters next to the data list, or nothing at all.
package pagination

// Meta is the canonical pagination block attached to every list response.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

const (
	defaultPage     = 1
	defaultPageSize = 50
)

// Reconcile produces a Meta from a raw list payload. Fields present in a
// nested meta object pass through unchanged; anything missing is synthesized
// from the flat total/page/page_size counters, defaulting page=1 and
// page_size=50. Reconcile(Reconcile(x).AsMap()) == Reconcile(x) for any
// JSON-shaped input.
func Reconcile(raw map[string]any) Meta {
	src := raw
	if nested, ok := raw["meta"].(map[string]any); ok {
		src = nested
	}

	m := Meta{
		Page:     intField(src, "page", defaultPage),
		PageSize: intField(src, "page_size", defaultPageSize),
		Total:    int64(intField(src, "total", 0)),
	}
	if m.Page < 1 {
		m.Page = defaultPage
	}
	if m.PageSize < 1 {
		m.PageSize = defaultPageSize
	}

	if tp, ok := lookupInt(src, "total_pages"); ok {
		m.TotalPages = tp
	} else {
		m.TotalPages = totalPages(m.Total, m.PageSize)
	}
	if hn, ok := src["has_next"].(bool); ok {
		m.HasNext = hn
	} else {
		m.HasNext = m.Page < m.TotalPages
	}
	if hp, ok := src["has_prev"].(bool); ok {
		m.HasPrev = hp
	} else {
		m.HasPrev = m.Page > 1
	}
	return m
}

// AsMap renders the meta back into the nested raw shape. Round-tripping
// through AsMap and Reconcile is the identity, which is what makes the
// reconciler safe to apply at every call site.
func (m Meta) AsMap() map[string]any {
	return map[string]any{
		"meta": map[string]any{
			"page":        m.Page,
			"page_size":   m.PageSize,
			"total":       m.Total,
			"total_pages": m.TotalPages,
			"has_next":    m.HasNext,
			"has_prev":    m.HasPrev,
		},
	}
}

// totalPages is ceil(total/pageSize), never below 1 so empty lists still
// render page 1 of 1.
func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

func intField(src map[string]any, key string, fallback int) int {
	if v, ok := lookupInt(src, key); ok {
		return v
	}
	return fallback
}

// lookupInt tolerates the numeric encodings JSON decoding produces: float64
// from encoding/json plus native ints from already-canonical maps.
func lookupInt(src map[string]any, key string) (int, bool) {
	switch v := src[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}
