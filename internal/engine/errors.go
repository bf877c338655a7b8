package engine

import "errors"

// Sentinel errors the HTTP layer maps to distinct status codes. Storage
// failures are wrapped with %w instead of being folded into one of these.
var (
	// ErrConflict: the customer already holds an active or paused subscription.
	ErrConflict = errors.New("customer already has an open subscription")

	// ErrPlanNotFound: the referenced plan is absent or deactivated.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrNotFound: no subscription exists in the state the operation needs.
	ErrNotFound = errors.New("subscription not found")

	// ErrInvalidTransition: the requested lifecycle edge is not in the state machine.
	ErrInvalidTransition = errors.New("invalid subscription status transition")

	// ErrAmountMismatch: the caller-supplied amount disagrees with the catalog price.
	ErrAmountMismatch = errors.New("amount does not match plan price")

	// ErrPaymentDeclined: the payment processor refused the charge.
	ErrPaymentDeclined = errors.New("payment declined")
)
