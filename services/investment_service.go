package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"solcraft-backend/fallback"
	"solcraft-backend/middleware"
	"solcraft-backend/models"
	"solcraft-backend/storage"
	"solcraft-backend/utils"
)

type InvestmentService struct {
	Store storage.Store
}

func NewInvestmentService(store storage.Store) *InvestmentService {
	return &InvestmentService{Store: store}
}

// GetAllInvestments lists investments. The fallback dataset holds tournaments
// only, so a degraded response here is an empty list with the marker note.
func (s *InvestmentService) GetAllInvestments(c *fiber.Ctx) error {
	investments, err := s.Store.Investments(c.Context())
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			log.Printf("⚠️  [INVESTMENTS] store unavailable, degrading to empty list")
			return utils.SuccessWithNote(c, fiber.StatusOK, fiber.Map{
				"investments": []models.Investment{},
				"total":       0,
			}, fallback.Note)
		}
		log.Printf("❌ [INVESTMENTS] list failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"investments": investments,
		"total":       len(investments),
	})
}

// CreateInvestment stakes the authenticated user into a tournament's pool.
// Both the referenced tournament and the token's subject must exist before
// anything is inserted; amounts below the tournament's minimum are rejected
// with the minimum named.
func (s *InvestmentService) CreateInvestment(c *fiber.Ctx) error {
	var req struct {
		TournamentID uint    `json:"tournament_id"`
		Amount       float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	switch {
	case req.TournamentID == 0:
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: tournament_id")
	case req.Amount == 0:
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: amount")
	}

	userID := middleware.UserID(c)
	if userID == 0 {
		return utils.Error(c, fiber.StatusUnauthorized, "authentication required")
	}

	// --- Cross-reference existence checks, before any insert ---
	user, err := s.Store.UserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.Error(c, fiber.StatusNotFound, "user not found")
		}
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	tournament, err := s.Store.TournamentByID(c.Context(), req.TournamentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.Error(c, fiber.StatusNotFound, "tournament not found")
		}
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	if req.Amount < tournament.MinInvestment {
		return utils.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("minimum investment is $%.0f", tournament.MinInvestment))
	}

	var share float64
	if tournament.InvestmentPool > 0 {
		share = req.Amount / tournament.InvestmentPool * 100
	}

	investment := models.Investment{
		UserID:          user.ID,
		TournamentID:    tournament.ID,
		TournamentName:  tournament.Name,
		Organizer:       tournament.Organizer,
		Amount:          req.Amount,
		SharePercentage: share,
		Status:          "active",
		CurrentValue:    req.Amount,
		ROI:             0,
		ExpectedPayout:  &tournament.StartTime,
		RiskLevel:       tournament.RiskLevel,
	}
	if err := s.Store.CreateInvestment(c.Context(), &investment); err != nil {
		log.Printf("❌ [INVESTMENTS] create failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	log.Printf("✅ [INVESTMENTS] user %d invested %.2f in tournament %d", user.ID, req.Amount, tournament.ID)
	return utils.Success(c, fiber.StatusCreated, fiber.Map{"investment": investment})
}
