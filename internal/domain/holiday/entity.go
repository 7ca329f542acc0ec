package holiday

import (
	"github.com/hrdash/hrdash-gateway-go/internal/calendar"
)

// Kind classifies a holiday within a calendar.
type Kind string

const (
	KindNational   Kind = "national"
	KindRestricted Kind = "restricted"
	KindOptional   Kind = "optional"
)

// Holiday is a single dated entry in a holiday calendar. Read-only from the
// gateway's perspective; admin CRUD lives upstream.
type Holiday struct {
	Name       string        `json:"name"`
	Date       calendar.Date `json:"date"`
	Kind       Kind          `json:"type"`
	CalendarID string        `json:"calendar_id,omitempty"`
}
