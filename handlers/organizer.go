package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solcraft-backend/services"
)

func SetupOrganizerRoutes(app *fiber.App, organizerService *services.OrganizerService) {
	api := app.Group("/api")

	api.Post("/organizers/apply", organizerService.Apply)
}
