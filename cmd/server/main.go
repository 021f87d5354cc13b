package main

import (
	"log"
	"os"
	"strings"

	"sifted_back_end/internal/config"
	"sifted_back_end/internal/database"
	"sifted_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Fatal("❌ Cannot initialize the payment gateway: STRIPE_SECRET_KEY is missing")
	}
	log.Println("✅ Payment gateway initialized")

	database.ConnectDatabases()
	defer database.CloseScylla()

	r := gin.Default()
	r.Use(corsConfig())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Sifted House backend listening on port", port)
	r.Run(":" + port)
}

// corsConfig allows the storefront origin(s), comma separated in
// CORS_ORIGINS, defaulting to the local Next.js dev server.
func corsConfig() gin.HandlerFunc {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
