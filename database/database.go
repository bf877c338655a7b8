package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"subscription-box/internal/domain/billing"
	"subscription-box/internal/domain/plans"
	"subscription-box/internal/domain/products"
	"subscription-box/internal/domain/subscriptions"
	"subscription-box/internal/domain/users"
)

// InitDB opens the connection and migrates the schema. The handle is returned
// to the caller; main owns its lifecycle and wires it into the store and
// handlers explicitly.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Duplicate-key violations come back as gorm.ErrDuplicatedKey so the
		// store can report them as subscription conflicts.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&plans.Plan{},
		&subscriptions.Subscription{},
		&billing.Payment{},
		&billing.Order{},
		&products.Product{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// One open (active or paused) subscription per customer, enforced where
	// it cannot race: in the database itself.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_open_per_user
		ON subscriptions (user_id)
		WHERE status IN ('active', 'paused')
	`).Error; err != nil {
		return nil, fmt.Errorf("create open-subscription index: %w", err)
	}

	fmt.Println("Connected and migrated successfully")
	return db, nil
}

// Seed inserts the default plan catalog and the admin account when they are
// missing. Safe to run on every startup.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := seedPlans(db); err != nil {
		return err
	}
	return seedAdmin(db, adminEmail, adminPassword)
}

func seedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&plans.Plan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count plans: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := []plans.Plan{
		{
			Name:        "Basic Box",
			Description: "Monthly surprise box with 3-5 items",
			Price:       decimal.RequireFromString("19.99"),
			Interval:    plans.IntervalMonthly,
			IsActive:    true,
		},
		{
			Name:        "Premium Box",
			Description: "Monthly premium box with 5-7 high-quality items",
			Price:       decimal.RequireFromString("39.99"),
			Interval:    plans.IntervalMonthly,
			IsActive:    true,
		},
		{
			Name:        "Annual Box",
			Description: "Annual subscription with 12 boxes and exclusive items",
			Price:       decimal.RequireFromString("199.99"),
			Interval:    plans.IntervalAnnually,
			IsActive:    true,
		},
	}
	if err := db.Create(&catalog).Error; err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	fmt.Println("Seeded default subscription plans")
	return nil
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&users.User{}).Where("role = ?", users.RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	hash := string(hashed)

	admin := users.User{
		Email:        email,
		PasswordHash: &hash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         users.RoleAdmin,
		AuthProvider: "local",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	fmt.Println("Seeded admin user:", email)
	return nil
}
