package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/streadway/amqp"

	"perricueva/internal/auth"
	"perricueva/internal/handlers"
	"perricueva/internal/middleware"
	"perricueva/internal/models"
	"perricueva/internal/ratelimit"
	"perricueva/internal/repositories"
	"perricueva/internal/services"
	"perricueva/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("SQLITE_PATH", "perricueva.db")
	viper.SetDefault("PIN_RATE_MAX", 5)
	viper.SetDefault("PIN_RATE_WINDOW", 15*time.Minute)
	viper.SetDefault("MUTATION_RATE_MAX", 10)
	viper.SetDefault("MUTATION_RATE_WINDOW", time.Minute)
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Admin secret ---
	// ADMIN_PIN_HASH (bcrypt) takes precedence over the plain ADMIN_PIN.
	// The validator fails closed when neither is set, so the server still
	// starts and reports a configuration error on gated requests.
	pinValidator := auth.NewPinValidator(
		viper.GetString("ADMIN_PIN"),
		viper.GetString("ADMIN_PIN_HASH"),
	)
	if !pinValidator.Configured() {
		log.Println("Warning: no ADMIN_PIN or ADMIN_PIN_HASH configured; admin endpoints will reject all requests")
	}

	// --- Database ---
	db := openDatabase()
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog audit events disabled")
	}

	// --- Rate limiters ---
	pinLimiter := ratelimit.New(
		viper.GetInt("PIN_RATE_MAX"),
		viper.GetDuration("PIN_RATE_WINDOW"),
	)
	mutationLimiter := ratelimit.New(
		viper.GetInt("MUTATION_RATE_MAX"),
		viper.GetDuration("MUTATION_RATE_WINDOW"),
	)

	// --- Repositories / Services / Handlers ---
	productRepo := repositories.NewGORMProductRepository(db)
	catalogService := services.NewCatalogService(productRepo)
	adminService := services.NewAdminService(productRepo, mqClient)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	pinHandler := handlers.NewPinHandler(pinValidator, pinLimiter)
	adminHandler := handlers.NewAdminHandler(adminService, pinValidator, mutationLimiter)

	// --- Fiber App ---
	app := fiber.New()

	app.Use(logger.New())      // Request logger
	app.Use(recover.New())     // Panic recovery
	app.Use(middleware.CORS()) // Permissive CORS, empty 200 on preflight

	catalogHandler.RegisterRoutes(app)
	pinHandler.RegisterRoutes(app)
	adminHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Catalog audit consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Catalog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens Postgres when DATABASE_URL is set, otherwise a local
// sqlite file for development.
func openDatabase() *gorm.DB {
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("Failed to access database pool: %v", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
		log.Println("Connected to postgres")
		return db
	}

	path := viper.GetString("SQLITE_PATH")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open sqlite database %s: %v", path, err)
	}
	log.Printf("Using sqlite database at %s", path)
	return db
}
