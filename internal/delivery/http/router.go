package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartcity/traffic-analyzer/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, dashboardSvc *service.DashboardService) {
	handler := NewHandler(dashboardSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Get("/locations", handler.GetLocations)
		api.Get("/dashboard", handler.GetDashboard)
		api.Post("/insights", handler.AskInsight)
		api.Get("/history", handler.GetHistory)
		api.Get("/predict", handler.Predict)
	}
}

// ErrorHandler renders errors as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
