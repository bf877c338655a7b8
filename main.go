package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"subscription-box/config"
	"subscription-box/database"
	routes "subscription-box/internal/app/http"
	"subscription-box/internal/engine"
	"subscription-box/internal/payments"
	"subscription-box/internal/store"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.InitDB(config.DB_URL)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	if err := database.Seed(db, config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	eng := engine.New(store.New(db), payments.NewSimulator())

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, eng)

	r.Run(":" + config.PORT)
}
