package subscriptions

// Status is the closed set of subscription lifecycle states.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
	StatusPastDue   Status = "past_due"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCancelled, StatusPastDue:
		return true
	}
	return false
}

// NonTerminal reports whether the subscription still counts against the
// one-open-subscription-per-customer rule.
func (s Status) NonTerminal() bool {
	return s == StatusActive || s == StatusPaused
}

// CanTransition reports whether the lifecycle edge from -> to is allowed.
// past_due is written only by the external billing-retry job; nothing here
// transitions into or out of it.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusActive:
		return to == StatusPaused || to == StatusCancelled
	case StatusPaused:
		return to == StatusActive || to == StatusCancelled
	}
	return false
}
