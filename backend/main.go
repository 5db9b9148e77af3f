package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"learnx/backend/clickstream"
	"learnx/backend/config"
	"learnx/backend/routes"
	"learnx/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Clickstream pipeline: store -> logger -> capture. Capture живёт,
	// пока живёт приложение.
	store := clickstream.NewStore(db)
	eventLogger := clickstream.NewLogger(store, clickstream.NewIPResolver(cfg.IPLookupURL), logger, cfg.EventOrigin)
	capture := clickstream.NewCapture(eventLogger)
	capture.Start()
	agg := clickstream.NewAggregator(store)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(utils.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, eventLogger, capture, agg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		_ = app.Shutdown()
	}()

	// Start server
	listenErr := app.Listen(":" + cfg.ServerPort)

	// Останавливаем приём событий и дожидаемся незавершённых записей
	// перед выходом — в том числе при ошибке сервера.
	capture.Stop()

	if listenErr != nil {
		log.Fatalf("Server error: %v", listenErr)
	}
}
