package main

import (
	"log"
	"time"

	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/logger"
	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
	"storefront/routes"
	"storefront/sender"
	"storefront/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.Initialize(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Could not connect to PostgreSQL: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	userRepo := repository.NewGormUserRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	cartRepo := repository.NewGormCartRepository(db)

	emailSender, err := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPTimeout)
	if err != nil {
		log.Fatalf("SMTP configuration invalid: %v", err)
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	authService := services.NewAuthService(userRepo, cfg.AdminEmail, zapLogger)
	catalogService := services.NewCatalogService(productRepo, zapLogger)
	cartService := services.NewCartService(cartRepo, productRepo, zapLogger)
	notifier := services.NewNotificationService(emailSender, cfg.ContactEmail, zapLogger)
	stripeGateway := services.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	checkoutService := services.NewCheckoutService(
		cartRepo, productRepo, userRepo,
		stripeGateway, notifier,
		cfg.Domain, cfg.Currency,
		zapLogger,
	)

	secureCookies := cfg.Env == "production"
	authController := controllers.NewAuthController(authService, tokenService, int(cfg.SessionTTL.Seconds()), secureCookies)
	productController := controllers.NewProductController(catalogService)
	cartController := controllers.NewCartController(cartService)
	checkoutController := controllers.NewCheckoutController(checkoutService, stripeGateway, zapLogger)
	contactController := controllers.NewContactController(notifier)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zapLogger))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Domain},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(r, tokenService, authController, productController, cartController, checkoutController, contactController)

	log.Println("Storefront running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
