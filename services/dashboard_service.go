package services

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"solcraft-backend/fallback"
	"solcraft-backend/models"
	"solcraft-backend/storage"
	"solcraft-backend/utils"
)

type DashboardService struct {
	Store storage.Store
}

func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{Store: store}
}

// Health answers a liveness probe.
func (s *DashboardService) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetStats serves the public dashboard aggregate, degrading to figures
// computed from the fallback dataset when the store is unavailable.
func (s *DashboardService) GetStats(c *fiber.Ctx) error {
	stats, err := s.Store.Stats(c.Context())
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			log.Printf("⚠️  [DASHBOARD] store unavailable, serving fallback stats")
			degraded := fallback.Stats()
			fillPortfolioConstants(degraded)
			return utils.SuccessWithNote(c, fiber.StatusOK, degraded, fallback.Note)
		}
		log.Printf("❌ [DASHBOARD] stats failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	fillPortfolioConstants(stats)
	return utils.Success(c, fiber.StatusOK, stats)
}

// fillPortfolioConstants applies the original platform's fixed portfolio and
// liquidity figures, which were never backed by the store.
func fillPortfolioConstants(stats *models.PlatformStats) {
	stats.PortfolioValue = 25430
	stats.TotalROI = 13.02
	stats.LiquidityPool = 547800000
	stats.Volume24h = 547800000
}

// GetAdminStats serves the operator dashboard. Same degradation policy; the
// fallback dataset has no users or applications, so those counts read zero.
func (s *DashboardService) GetAdminStats(c *fiber.Ctx) error {
	stats, err := s.Store.AdminStats(c.Context())
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			log.Printf("⚠️  [DASHBOARD] store unavailable, serving fallback admin stats")
			sample := fallback.Stats()
			return utils.SuccessWithNote(c, fiber.StatusOK, fiber.Map{
				"users":       0,
				"tournaments": sample.TotalTournaments,
				"investments": 0,
				"organizers":  0,
				"totalVolume": sample.TotalVolume,
				"revenue":     sample.TotalVolume * 0.05,
				"status":      "degraded",
			}, fallback.Note)
		}
		log.Printf("❌ [DASHBOARD] admin stats failed: %v", err)
		return utils.Error(c, fiber.StatusInternalServerError, "database error")
	}

	return utils.Success(c, fiber.StatusOK, stats)
}
