package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBillingInterval(t *testing.T) {
	tests := []struct {
		in   string
		want BillingInterval
	}{
		{"monthly", IntervalMonthly},
		{"quarterly", IntervalQuarterly},
		{"annually", IntervalAnnually},
		{"  Monthly ", IntervalMonthly},
		{"ANNUALLY", IntervalAnnually},
	}
	for _, tt := range tests {
		got, err := ParseBillingInterval(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "weekly", "month", "yearly"} {
		_, err := ParseBillingInterval(bad)
		assert.Error(t, err, bad)
	}
}

func TestIntervalMonths(t *testing.T) {
	assert.Equal(t, 1, IntervalMonthly.Months())
	assert.Equal(t, 3, IntervalQuarterly.Months())
	assert.Equal(t, 12, IntervalAnnually.Months())
}
