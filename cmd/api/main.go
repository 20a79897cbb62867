package main

import (
	"fmt"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/soocci/soocci-backend/internal/auth"
	"github.com/soocci/soocci-backend/internal/config"
	"github.com/soocci/soocci-backend/internal/database"
	"github.com/soocci/soocci-backend/internal/handlers"
	"github.com/soocci/soocci-backend/internal/mail"
	"github.com/soocci/soocci-backend/internal/repository"
	"github.com/soocci/soocci-backend/internal/routes"
	"github.com/soocci/soocci-backend/internal/storage"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Warn("Could not find or load .env file. Relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is not set.")
	}
	auth.SetSecret(cfg.Auth.JWTSecret)

	// 1. --- Database Connection ---
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Object Storage ---
	if cfg.Storage.BaseURL == "" {
		log.Fatal("STORAGE_BASE_URL environment variable is not set.")
	}
	store := storage.NewSupabaseStore(cfg.Storage.BaseURL, cfg.Storage.ServiceKey, cfg.Storage.Bucket)

	// 3. --- Email Relay ---
	// An empty API key is allowed; the relay endpoints then report
	// "email service not configured" instead of sending.
	mailer := mail.NewResendMailer(cfg.Mail.APIKey, cfg.Mail.FromAddress, cfg.Mail.ContactEmail)
	if cfg.Mail.APIKey == "" {
		log.Warn("MAIL_API_KEY not set; contact and newsletter endpoints are disabled.")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Categories: repository.NewCategoryRepository(db),
		Products:   repository.NewProductRepository(db),
		Admins:     repository.NewAdminRepository(db),
		Store:      store,
		Mailer:     mailer,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg.Server.CORSOrigin)

	// --- Start Server ---
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("Starting Soocci catalog API server on %s...", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
