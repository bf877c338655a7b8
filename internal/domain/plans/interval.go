package plans

import (
	"fmt"
	"strings"
)

// BillingInterval is the closed set of billing cadences a plan can carry.
type BillingInterval string

const (
	IntervalMonthly   BillingInterval = "monthly"
	IntervalQuarterly BillingInterval = "quarterly"
	IntervalAnnually  BillingInterval = "annually"
)

func (i BillingInterval) Valid() bool {
	switch i {
	case IntervalMonthly, IntervalQuarterly, IntervalAnnually:
		return true
	}
	return false
}

// Months returns the calendar length of one billing period.
func (i BillingInterval) Months() int {
	switch i {
	case IntervalQuarterly:
		return 3
	case IntervalAnnually:
		return 12
	default:
		return 1
	}
}

// ParseBillingInterval rejects anything outside the closed set, so bad values
// fail at the edge instead of surfacing later as a mispriced period.
func ParseBillingInterval(s string) (BillingInterval, error) {
	iv := BillingInterval(strings.ToLower(strings.TrimSpace(s)))
	if !iv.Valid() {
		return "", fmt.Errorf("unknown billing interval %q", s)
	}
	return iv, nil
}
