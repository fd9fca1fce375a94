package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rzkir/pos-mini-konter/internal/application/service"
	"github.com/rzkir/pos-mini-konter/internal/config"
	"github.com/rzkir/pos-mini-konter/internal/infrastructure/database"
	"github.com/rzkir/pos-mini-konter/internal/infrastructure/repository"
	"github.com/rzkir/pos-mini-konter/internal/presentation/http/handler"
	"github.com/rzkir/pos-mini-konter/internal/presentation/http/routes"
	"github.com/rzkir/pos-mini-konter/pkg/printer"
	"github.com/rzkir/pos-mini-konter/pkg/receipt"
	"github.com/rzkir/pos-mini-konter/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.FromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	transactionService := service.NewTransactionService(transactionRepo, productRepo)
	receiptService := service.NewReceiptService(
		thermalPrinter,
		transactionRepo,
		receipt.StoreInfo{
			Name:    cfg.Store.Name,
			Address: cfg.Store.Address,
			Phone:   cfg.Store.Phone,
			Footer:  cfg.Store.Footer,
		},
		cfg.Printer.Type,
		cfg.Printer.Width,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Product:     handler.NewProductHandler(productService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Receipt:     handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
