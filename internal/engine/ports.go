package engine

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"subscription-box/internal/domain/billing"
	"subscription-box/internal/domain/plans"
	"subscription-box/internal/domain/subscriptions"
)

// Store is the storage capability the engine runs against. Transaction runs
// fn against a store whose writes commit or roll back as one unit; reads
// inside fn observe the transaction's own writes.
type Store interface {
	// ActivePlan returns the purchasable plan with the given id, or
	// ErrPlanNotFound when it is absent or deactivated.
	ActivePlan(ctx context.Context, planID uint) (*plans.Plan, error)

	// FindNonTerminal returns the customer's active or paused subscription,
	// or (nil, nil) when there is none.
	FindNonTerminal(ctx context.Context, customerID uint) (*subscriptions.Subscription, error)

	// LatestSubscription returns the customer's most recent subscription in
	// any status, or (nil, nil) when the customer never subscribed.
	LatestSubscription(ctx context.Context, customerID uint) (*subscriptions.Subscription, error)

	// CreateSubscription inserts an active subscription. It must re-check the
	// one-open-subscription rule itself and return ErrConflict when the insert
	// would violate it; the orchestrator's earlier check alone cannot close
	// the race between two concurrent subscribes.
	CreateSubscription(ctx context.Context, customerID, planID uint, periodStart, periodEnd time.Time) (*subscriptions.Subscription, error)

	// TransitionSubscription moves the subscription onto the target status.
	// ErrNotFound when the row is missing, ErrInvalidTransition when the edge
	// is not permitted from the row's current status.
	TransitionSubscription(ctx context.Context, subscriptionID uint, target subscriptions.Status) (*subscriptions.Subscription, error)

	RecordPayment(ctx context.Context, subscriptionID uint, amount decimal.Decimal, method string) (*billing.Payment, error)
	CreateInitialOrder(ctx context.Context, subscriptionID uint, total decimal.Decimal) (*billing.Order, error)

	// ListPayments and ListOrders return the customer's records newest first.
	ListPayments(ctx context.Context, customerID uint) ([]billing.Payment, error)
	ListOrders(ctx context.Context, customerID uint) ([]billing.Order, error)

	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// PaymentProcessor charges a payment method. Declines come back through
// Outcome.Approved, not the error; a non-nil error means the processor itself
// broke and nothing can be said about the charge.
type PaymentProcessor interface {
	Charge(ctx context.Context, req ChargeRequest) (Outcome, error)
}

type ChargeRequest struct {
	Amount decimal.Decimal
	Method string
}

type Outcome struct {
	Approved      bool
	TransactionID string
	Amount        decimal.Decimal
	Method        string
	DeclineReason string
}
