package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solcraft-backend/services"
)

func SetupDashboardRoutes(app *fiber.App, dashboardService *services.DashboardService) {
	api := app.Group("/api")

	api.Get("/health", dashboardService.Health)
	api.Get("/dashboard/stats", dashboardService.GetStats)
	api.Get("/admin/dashboard", dashboardService.GetAdminStats)
}
