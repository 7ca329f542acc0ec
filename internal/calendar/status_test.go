package calendar

import "testing"

func TestResolveStatusPrecedence(t *testing.T) {
	cases := []struct {
		name         string
		recordStatus DayStatus
		holiday      bool
		weekend      bool
		future       bool
		want         DayStatus
	}{
		{"holiday dominates record", StatusPresent, true, false, false, StatusHoliday},
		{"holiday dominates weekend", "", true, true, false, StatusHoliday},
		{"record status verbatim", StatusWorkFromHome, false, false, false, StatusWorkFromHome},
		{"record on_leave verbatim", StatusOnLeave, false, false, false, StatusOnLeave},
		{"record on weekend wins over weekend", StatusPresent, false, true, false, StatusPresent},
		{"weekend without record", "", false, true, false, StatusWeekend},
		{"weekend beats future", "", false, true, true, StatusWeekend},
		{"future weekday", "", false, false, true, StatusFuture},
		{"past weekday no record", "", false, false, false, StatusAbsent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveStatus(c.recordStatus, c.holiday, c.weekend, c.future)
			if got != c.want {
				t.Errorf("ResolveStatus(%q, %v, %v, %v) = %q, want %q",
					c.recordStatus, c.holiday, c.weekend, c.future, got, c.want)
			}
		})
	}
}
