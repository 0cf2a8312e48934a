package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/auth"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/config"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/database"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/payments"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/routes"
	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	manager := auth.NewManager(cfg.JWTSecret)
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	// Initialize router
	router := routes.SetupRouter(client, cfg.DatabaseName, manager, gateway, mailer)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Wrap router with CORS
	handler := c.Handler(router)

	// Start server
	log.Printf("🚀 Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
