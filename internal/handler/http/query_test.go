package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		wantYear  int
		wantMonth int
	}{
		{"month key form", "/calendar?month=2024-02", 2024, 2},
		{"split integer form", "/calendar?year=2024&month=2", 2024, 2},
		{"integer month alone", "/calendar?month=7", 0, 7},
		{"malformed month key defaults", "/calendar?month=2024-13", 0, 0},
		{"garbage month key defaults", "/calendar?month=feb-2024", 0, 0},
		{"absent defaults", "/calendar", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			year, month := queryMonth(r)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/settlements?page=3&page_size=abc", nil)
	assert.Equal(t, 3, queryInt(r, "page"))
	assert.Equal(t, 0, queryInt(r, "page_size"))
	assert.Equal(t, 0, queryInt(r, "missing"))
}
