package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/smartcity/traffic-analyzer/internal/config"
	"github.com/smartcity/traffic-analyzer/internal/delivery/http"
	"github.com/smartcity/traffic-analyzer/internal/llm"
	"github.com/smartcity/traffic-analyzer/internal/registry"
	"github.com/smartcity/traffic-analyzer/internal/service"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	cfg.SetupLogger()
	if envErr != nil {
		log.Info().Msg("No .env file found, using system environment")
	}

	reg, err := registry.Load(cfg.LocationsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load locations")
	}

	if cfg.Bedrock.AccessKey == "" || cfg.Bedrock.SecretKey == "" {
		log.Warn().Msg("AWS credentials not set, insight questions will return an error description")
	}

	// Dependency Injection: Services
	textGen := llm.NewBedrockClient(cfg.Bedrock)
	insightSvc := service.NewInsightService(textGen, cfg.InsightTimeout)
	dashboardSvc := service.NewDashboardService(reg, insightSvc, cfg.IncidentCount, cfg.RandomSeed)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Traffic Analyzer API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.InsightTimeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, dashboardSvc)

	// Graceful shutdown
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("city", reg.City()).
			Int("locations", len(reg.Locations())).
			Msg("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
