package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"subscription-box/config"
	adminapi "subscription-box/internal/api/admin"
	authapi "subscription-box/internal/api/auth"
	billingapi "subscription-box/internal/api/billing"
	customerapi "subscription-box/internal/api/customer"
	plansapi "subscription-box/internal/api/plans"
	"subscription-box/internal/app/http/middleware"
	"subscription-box/internal/domain/users"
	"subscription-box/internal/engine"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, eng *engine.Engine) {
	authHandler := authapi.NewHandler(db)
	plansHandler := plansapi.NewHandler(db)
	billingHandler := billingapi.NewHandler(eng)
	customerHandler := customerapi.NewHandler(db, eng)
	adminHandler := adminapi.NewHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "message": "Subscription Box API is running"})
	})

	// Public
	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/auth/register", authHandler.Register)
	public.POST("/auth/login", authHandler.Login)
	public.GET("/auth/google", authHandler.GoogleStart)
	public.GET("/auth/google/callback", authHandler.GoogleCallback)
	public.GET("/plans", plansHandler.List)
	public.GET("/plans/:id", plansHandler.Get)

	// Authenticated
	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware(config.JWT_SECRET))
	auth.GET("/auth/me", authHandler.Me)

	auth.GET("/customer/profile", customerHandler.Profile)
	auth.PUT("/customer/profile", customerHandler.UpdateProfile)
	auth.GET("/customer/subscription", customerHandler.Subscription)
	auth.POST("/customer/subscription/pause", customerHandler.PauseSubscription)
	auth.POST("/customer/subscription/resume", customerHandler.ResumeSubscription)
	auth.POST("/customer/subscription/cancel", customerHandler.CancelSubscription)
	auth.GET("/customer/orders", customerHandler.Orders)

	auth.POST("/payments/subscribe", billingHandler.Subscribe)
	auth.GET("/payments/history", billingHandler.History)

	// Admin
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(config.JWT_SECRET), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/customers", adminHandler.Customers)
	admin.GET("/subscriptions", adminHandler.Subscriptions)
	admin.GET("/products", adminHandler.Products)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
}
