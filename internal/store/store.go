package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"subscription-box/internal/domain/billing"
	"subscription-box/internal/domain/plans"
	"subscription-box/internal/domain/subscriptions"
	"subscription-box/internal/engine"
)

// Gorm implements engine.Store on a gorm handle. The handle is injected; this
// package never reaches for a global connection.
type Gorm struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Transaction hands fn a store bound to one database transaction, so every
// write inside commits or rolls back together.
func (s *Gorm) Transaction(ctx context.Context, fn func(tx engine.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
}

func (s *Gorm) ActivePlan(ctx context.Context, planID uint) (*plans.Plan, error) {
	var plan plans.Plan
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", planID, true).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, engine.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	return &plan, nil
}

func (s *Gorm) FindNonTerminal(ctx context.Context, customerID uint) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", customerID, openStatuses()).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find open subscription: %w", err)
	}
	return &sub, nil
}

func (s *Gorm) LatestSubscription(ctx context.Context, customerID uint) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", customerID).
		Order("created_at DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}
	return &sub, nil
}

func (s *Gorm) CreateSubscription(ctx context.Context, customerID, planID uint, periodStart, periodEnd time.Time) (*subscriptions.Subscription, error) {
	// Re-check under a row lock. Locked rows cover the update path; the
	// insert/insert race between two customers with no prior rows is closed
	// by the partial unique index on (user_id) WHERE status IN
	// ('active','paused'), which surfaces here as a duplicated key.
	var open []subscriptions.Subscription
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND status IN ?", customerID, openStatuses()).
		Find(&open).Error
	if err != nil {
		return nil, fmt.Errorf("recheck open subscription: %w", err)
	}
	if len(open) > 0 {
		return nil, engine.ErrConflict
	}

	sub := subscriptions.Subscription{
		UserID:             customerID,
		PlanID:             planID,
		Status:             subscriptions.StatusActive,
		CurrentPeriodStart: periodStart,
		CurrentPeriodEnd:   periodEnd,
	}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, engine.ErrConflict
		}
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &sub, nil
}

func (s *Gorm) TransitionSubscription(ctx context.Context, subscriptionID uint, target subscriptions.Status) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	err := s.db.WithContext(ctx).First(&sub, subscriptionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, engine.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}

	if !subscriptions.CanTransition(sub.Status, target) {
		return nil, engine.ErrInvalidTransition
	}

	// Guard on the source status so a concurrent transition loses cleanly
	// instead of overwriting.
	res := s.db.WithContext(ctx).
		Model(&subscriptions.Subscription{}).
		Where("id = ? AND status = ?", sub.ID, sub.Status).
		Update("status", target)
	if res.Error != nil {
		return nil, fmt.Errorf("update subscription status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, engine.ErrInvalidTransition
	}

	sub.Status = target
	return &sub, nil
}

func (s *Gorm) RecordPayment(ctx context.Context, subscriptionID uint, amount decimal.Decimal, method string) (*billing.Payment, error) {
	payment := billing.Payment{
		SubscriptionID: subscriptionID,
		Amount:         amount,
		Status:         billing.PaymentCompleted,
		PaymentMethod:  method,
	}
	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return &payment, nil
}

func (s *Gorm) CreateInitialOrder(ctx context.Context, subscriptionID uint, total decimal.Decimal) (*billing.Order, error) {
	order := billing.Order{
		SubscriptionID: subscriptionID,
		Status:         billing.OrderPending,
		TotalAmount:    total,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

func (s *Gorm) ListPayments(ctx context.Context, customerID uint) ([]billing.Payment, error) {
	var payments []billing.Payment
	err := s.db.WithContext(ctx).
		Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
		Where("subscriptions.user_id = ?", customerID).
		Order("payments.created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *Gorm) ListOrders(ctx context.Context, customerID uint) ([]billing.Order, error) {
	var orders []billing.Order
	err := s.db.WithContext(ctx).
		Joins("JOIN subscriptions ON subscriptions.id = orders.subscription_id").
		Where("subscriptions.user_id = ?", customerID).
		Order("orders.created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func openStatuses() []subscriptions.Status {
	return []subscriptions.Status{subscriptions.StatusActive, subscriptions.StatusPaused}
}
