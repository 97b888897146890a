package services

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"solcraft-backend/mailer"
	"solcraft-backend/models"
	"solcraft-backend/storage"
	"solcraft-backend/utils"
)

type OrganizerService struct {
	Store  storage.Store
	Mailer *mailer.Mailer
}

func NewOrganizerService(store storage.Store, m *mailer.Mailer) *OrganizerService {
	return &OrganizerService{Store: store, Mailer: m}
}

// Apply submits an organizer application and triggers a best-effort
// confirmation email. A failed send is logged and never fails the request.
func (s *OrganizerService) Apply(c *fiber.Ctx) error {
	var req struct {
		FullName            string  `json:"fullName"`
		Email               string  `json:"email"`
		PokerExperience     string  `json:"pokerExperience"`
		PokerCredentials    string  `json:"pokerCredentials"`
		OrganizerExperience string  `json:"organizerExperience"`
		CollateralAmount    float64 `json:"collateralAmount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	// --- Validation: name the first missing field ---
	switch {
	case req.FullName == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: fullName")
	case req.PokerExperience == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: pokerExperience")
	case req.PokerCredentials == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: pokerCredentials")
	case req.OrganizerExperience == "":
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: organizerExperience")
	case req.CollateralAmount == 0:
		return utils.Error(c, fiber.StatusBadRequest, "missing required field: collateralAmount")
	}

	application := models.OrganizerApplication{
		Reference:           uuid.NewString(),
		FullName:            req.FullName,
		Email:               req.Email,
		PokerExperience:     req.PokerExperience,
		PokerCredentials:    req.PokerCredentials,
		OrganizerExperience: req.OrganizerExperience,
		CollateralAmount:    req.CollateralAmount,
		Status:              models.ApplicationPending,
	}
	if err := s.Store.CreateApplication(c.Context(), &application); err != nil {
		log.Printf("❌ [ORGANIZERS] create application failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	if s.Mailer.Configured() && req.Email != "" {
		if err := s.Mailer.SendApplicationReceived(req.Email, req.FullName, req.CollateralAmount); err != nil {
			log.Printf("⚠️  [ORGANIZERS] confirmation email to %s failed: %v", req.Email, err)
		} else {
			log.Printf("📧 [ORGANIZERS] confirmation email sent to %s", req.Email)
		}
	}

	log.Printf("✅ [ORGANIZERS] application %s submitted by %s", application.Reference, application.FullName)
	return utils.Success(c, fiber.StatusCreated, fiber.Map{
		"application": application,
		"message":     "Application submitted successfully",
	})
}
