package validator

import (
	"testing"
)

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "year must be between 2000 and 2100"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}

	if got := errs.Error(); got != "year: year must be between 2000 and 2100; month: month must be between 1 and 12" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["month"] != "month must be between 1 and 12" {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"2024-02", "2000-12"}
	invalid := []string{"2024-13", "2024", "02-2024", ""}
	for _, s := range valid {
		if _, ok := IsValidMonth(s); !ok {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}

	if m, ok := IsValidMonth("2024-02"); !ok || m.Year() != 2024 || int(m.Month()) != 2 {
		t.Errorf("IsValidMonth(\"2024-02\") = %v, %v", m, ok)
	}
}
