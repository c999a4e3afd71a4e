package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-derived settings for the storefront. It is
// loaded once in main and passed by reference to the components that need it.
type Config struct {
	Env  string
	Port string

	DatabaseURL string

	JWTSecret  string
	SessionTTL time.Duration

	StripeSecretKey     string
	StripePublicKey     string
	StripeWebhookSecret string

	// Domain is the externally reachable base URL used to build the
	// checkout success/cancel redirect targets.
	Domain string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPTimeout  time.Duration

	// ContactEmail receives contact-form submissions.
	ContactEmail string

	// AdminEmail marks the account that gets the admin role at registration.
	AdminEmail string

	Currency string
}

// LoadConfig loads environment variables into a Config struct and validates
// the required ones.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		SessionTTL:          24 * time.Hour,
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripePublicKey:     os.Getenv("STRIPE_PUBLIC_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Domain:              os.Getenv("DOMAIN"),
		SMTPHost:            getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPassword:        os.Getenv("SMTP_PASS"),
		SMTPTimeout:         10 * time.Second,
		ContactEmail:        os.Getenv("CONTACT_EMAIL"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		Currency:            getEnv("CURRENCY", "usd"),
	}

	required := map[string]string{
		"DATABASE_URL":          cfg.DatabaseURL,
		"JWT_SECRET":            cfg.JWTSecret,
		"STRIPE_SECRET_KEY":     cfg.StripeSecretKey,
		"STRIPE_WEBHOOK_SECRET": cfg.StripeWebhookSecret,
		"DOMAIN":                cfg.Domain,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("%s is required", name)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
