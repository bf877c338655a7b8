package billing

import (
	"time"

	"subscription-box/internal/domain/plans"
)

// NextPeriodEnd returns the end of the billing period that starts at start.
//
// Calendar arithmetic clamps to the last day of the target month: a period
// anchored on Jan 31 ends on Feb 29 in a leap year and Feb 28 otherwise, and
// an annual period anchored on Feb 29 ends on Feb 28. The clamp keeps the
// anchor day from spilling into the following month, which would silently
// drift every billing date after a short month.
func NextPeriodEnd(start time.Time, interval plans.BillingInterval) time.Time {
	return addMonthsClamped(start, interval.Months())
}

func addMonthsClamped(t time.Time, months int) time.Time {
	day := t.Day()
	hour, min, sec := t.Clock()

	// Anchor on the 1st so time.Date normalization only moves the month,
	// never the day.
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, hour, min, sec, t.Nanosecond(), t.Location())
	if last := lastDayOfMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// lastDayOfMonth relies on time.Date normalization: day zero of the next
// month is the final day of this one.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
