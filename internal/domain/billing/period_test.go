package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subscription-box/internal/domain/plans"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextPeriodEndMonthly(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"plain month", "2024-03-15T00:00:00Z", "2024-04-15T00:00:00Z"},
		{"jan 31 clamps to leap feb 29", "2024-01-31T00:00:00Z", "2024-02-29T00:00:00Z"},
		{"jan 31 clamps to feb 28", "2023-01-31T00:00:00Z", "2023-02-28T00:00:00Z"},
		{"jan 30 clamps to feb 28", "2023-01-30T00:00:00Z", "2023-02-28T00:00:00Z"},
		{"jan 29 clamps to feb 28", "2023-01-29T00:00:00Z", "2023-02-28T00:00:00Z"},
		{"mar 31 clamps to apr 30", "2024-03-31T00:00:00Z", "2024-04-30T00:00:00Z"},
		{"may 31 clamps to jun 30", "2024-05-31T00:00:00Z", "2024-06-30T00:00:00Z"},
		{"apr 30 stays day 30", "2024-04-30T00:00:00Z", "2024-05-30T00:00:00Z"},
		{"feb 29 stays day 29", "2024-02-29T00:00:00Z", "2024-03-29T00:00:00Z"},
		{"dec rolls into next year", "2024-12-31T00:00:00Z", "2025-01-31T00:00:00Z"},
		{"time of day preserved", "2024-01-31T09:30:45Z", "2024-02-29T09:30:45Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPeriodEnd(date(tt.start), plans.IntervalMonthly)
			assert.Equal(t, date(tt.want), got)
		})
	}
}

func TestNextPeriodEndQuarterly(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"plain quarter", "2024-01-15T00:00:00Z", "2024-04-15T00:00:00Z"},
		{"nov 30 clamps to leap feb 29", "2023-11-30T00:00:00Z", "2024-02-29T00:00:00Z"},
		{"nov 30 clamps to feb 28", "2024-11-30T00:00:00Z", "2025-02-28T00:00:00Z"},
		{"jan 31 clamps to apr 30", "2024-01-31T00:00:00Z", "2024-04-30T00:00:00Z"},
		{"year boundary", "2024-10-31T00:00:00Z", "2025-01-31T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPeriodEnd(date(tt.start), plans.IntervalQuarterly)
			assert.Equal(t, date(tt.want), got)
		})
	}
}

func TestNextPeriodEndAnnually(t *testing.T) {
	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"plain year", "2024-06-01T00:00:00Z", "2025-06-01T00:00:00Z"},
		{"feb 29 clamps to feb 28", "2024-02-29T00:00:00Z", "2025-02-28T00:00:00Z"},
		{"into a leap year keeps day", "2023-02-28T00:00:00Z", "2024-02-28T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPeriodEnd(date(tt.start), plans.IntervalAnnually)
			assert.Equal(t, date(tt.want), got)
		})
	}
}

// The calculator is pure: same input, same output.
func TestNextPeriodEndDeterministic(t *testing.T) {
	start := date("2024-01-31T12:00:00Z")
	first := NextPeriodEnd(start, plans.IntervalMonthly)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, NextPeriodEnd(start, plans.IntervalMonthly))
	}
}
