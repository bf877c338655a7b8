package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"subscription-box/internal/domain/billing"
	"subscription-box/internal/domain/subscriptions"
)

// Engine owns the subscription lifecycle: it is the only component that
// creates subscriptions, moves them between statuses, and cuts the payment
// and order records that go with a billing event. All collaborators come in
// through the ports in ports.go; the engine holds no globals.
type Engine struct {
	store     Store
	processor PaymentProcessor
	now       func() time.Time
}

func New(store Store, processor PaymentProcessor) *Engine {
	return &Engine{store: store, processor: processor, now: time.Now}
}

// WithClock overrides the engine's time source. Tests pin it to a fixed
// instant to assert period boundaries.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// SubscribeResult is the single atomic outcome of a successful subscribe:
// the three records committed together plus the processor's transaction id.
type SubscribeResult struct {
	Subscription  *subscriptions.Subscription
	Payment       *billing.Payment
	Order         *billing.Order
	TransactionID string
}

// Subscribe charges the plan price and opens a subscription for the customer.
//
// Checks run in a fixed order so callers get the most actionable error:
// existing open subscription, then plan existence, then price agreement, then
// the charge itself. The subscription, its payment, and its initial order are
// written in one storage transaction; a failure at any point leaves no
// partial records.
func (e *Engine) Subscribe(ctx context.Context, customerID, planID uint, amount decimal.Decimal) (*SubscribeResult, error) {
	existing, err := e.store.FindNonTerminal(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("check open subscription: %w", err)
	}
	if existing != nil {
		return nil, ErrConflict
	}

	plan, err := e.store.ActivePlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	// Never trust the client's price; the catalog is canonical.
	if !amount.Equal(plan.Price) {
		return nil, ErrAmountMismatch
	}

	outcome, err := e.processor.Charge(ctx, ChargeRequest{Amount: plan.Price, Method: "card"})
	if err != nil {
		return nil, fmt.Errorf("charge: %w", err)
	}
	if !outcome.Approved {
		return nil, ErrPaymentDeclined
	}

	start := e.now()
	end := billing.NextPeriodEnd(start, plan.Interval)

	var result SubscribeResult
	err = e.store.Transaction(ctx, func(tx Store) error {
		sub, err := tx.CreateSubscription(ctx, customerID, planID, start, end)
		if err != nil {
			return err
		}
		payment, err := tx.RecordPayment(ctx, sub.ID, outcome.Amount, outcome.Method)
		if err != nil {
			return fmt.Errorf("record payment: %w", err)
		}
		order, err := tx.CreateInitialOrder(ctx, sub.ID, outcome.Amount)
		if err != nil {
			return fmt.Errorf("create initial order: %w", err)
		}
		result = SubscribeResult{
			Subscription:  sub,
			Payment:       payment,
			Order:         order,
			TransactionID: outcome.TransactionID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Pause suspends the customer's active subscription.
func (e *Engine) Pause(ctx context.Context, customerID uint) (*subscriptions.Subscription, error) {
	return e.transition(ctx, customerID, subscriptions.StatusPaused)
}

// Resume reactivates the customer's paused subscription. The billing period
// is left untouched; pausing does not stop the clock.
func (e *Engine) Resume(ctx context.Context, customerID uint) (*subscriptions.Subscription, error) {
	return e.transition(ctx, customerID, subscriptions.StatusActive)
}

// Cancel closes the customer's open subscription. Cancelled subscriptions no
// longer count against the one-open-subscription rule, so the customer can
// subscribe again afterwards.
func (e *Engine) Cancel(ctx context.Context, customerID uint) (*subscriptions.Subscription, error) {
	return e.transition(ctx, customerID, subscriptions.StatusCancelled)
}

func (e *Engine) transition(ctx context.Context, customerID uint, target subscriptions.Status) (*subscriptions.Subscription, error) {
	var sub *subscriptions.Subscription
	err := e.store.Transaction(ctx, func(tx Store) error {
		current, err := tx.FindNonTerminal(ctx, customerID)
		if err != nil {
			return fmt.Errorf("find open subscription: %w", err)
		}
		if current == nil {
			return ErrNotFound
		}
		sub, err = tx.TransitionSubscription(ctx, current.ID, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Subscription returns the customer's most recent subscription, in any
// status, or nil when the customer never subscribed.
func (e *Engine) Subscription(ctx context.Context, customerID uint) (*subscriptions.Subscription, error) {
	return e.store.LatestSubscription(ctx, customerID)
}

// Payments returns the customer's payment history, newest first.
func (e *Engine) Payments(ctx context.Context, customerID uint) ([]billing.Payment, error) {
	return e.store.ListPayments(ctx, customerID)
}

// Orders returns the customer's order history, newest first.
func (e *Engine) Orders(ctx context.Context, customerID uint) ([]billing.Order, error) {
	return e.store.ListOrders(ctx, customerID)
}
