package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solcraft-backend/auth"
	"solcraft-backend/middleware"
	"solcraft-backend/services"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService, tokens *auth.TokenManager) {
	api := app.Group("/api")

	// 🔓 Public reads — degrade to fallback data when the store is down
	api.Get("/tournaments", tournamentService.GetAllTournaments)
	api.Get("/tournaments/:id", tournamentService.GetTournamentByID)

	// 🔐 Writes require a session
	secured := api.Group("/", middleware.SessionMiddleware(tokens))
	secured.Post("/tournaments", tournamentService.CreateTournament)
	secured.Patch("/tournaments/:id/status", tournamentService.UpdateTournamentStatus)
	secured.Post("/tournaments/:id/photo", tournamentService.UploadTournamentPhoto)
}
