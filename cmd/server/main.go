package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"library-management/internal/adapters/http/routes"
	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/config"
	"library-management/internal/core/services"
	"library-management/internal/pkg/response"

	"github.com/gofiber/fiber/v2"

	_ "library-management/docs" // Swagger docs
)

// @title Library Management API
// @version 1.0
// @description Library catalog, membership and lending API

// @contact.name API Support

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	response.SetExposeInternal(cfg.IsDev())

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed roles and the optional bootstrap admin
	seeder := config.NewSeeder(repositories.NewRoleRepository(db), repositories.NewUserRepository(db), cfg.Seed)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	// Create Fiber app with middlewares and routes
	app := routes.NewApp(cfg)
	borrowingService := routes.Setup(app, db, cfg)

	// Start cron service for the overdue sweep and pool metrics
	sqlDB, err := config.SQLDB()
	if err != nil {
		log.Fatalf("❌ Failed to get database pool: %v", err)
	}
	cronService := services.NewCronService(borrowingService, cfg.Library.OverdueCron, sqlDB)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}

	// Graceful shutdown
	go gracefulShutdown(app, cronService)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown stops background jobs, then the server. The pool is closed once Listen returns.
func gracefulShutdown(app *fiber.App, cronService *services.CronService) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cronService.Stop()

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
