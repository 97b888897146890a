package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solcraft-backend/services"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService) {
	api := app.Group("/api")

	// Wallet-identity variant
	api.Post("/auth/connect", authService.ConnectWallet)

	// Username/email/password variant
	api.Post("/users/register", authService.Register)
	api.Post("/users/login", authService.Login)
}
