package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solcraft-backend/auth"
	"solcraft-backend/middleware"
	"solcraft-backend/services"
)

func SetupInvestmentRoutes(app *fiber.App, investmentService *services.InvestmentService, tokens *auth.TokenManager) {
	api := app.Group("/api")

	api.Get("/investments", investmentService.GetAllInvestments)

	secured := api.Group("/", middleware.SessionMiddleware(tokens))
	secured.Post("/investments", investmentService.CreateInvestment)
}
