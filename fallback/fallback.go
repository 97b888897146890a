// Package fallback serves a fixed set of example tournaments when no database
// connection candidate succeeds, so read endpoints degrade instead of failing.
// The dataset is immutable for the process lifetime, never receives writes and
// is never reconciled with the real store. Responses built from it must carry
// the marker note so clients can tell degraded answers from live ones.
package fallback

import (
	"time"

	"solcraft-backend/models"
)

// Note is the marker attached to any response that used fallback data.
const Note = "using fallback data"

var sampleTournaments = []models.Tournament{
	{
		ID:              1,
		Name:            "Sunday Million",
		Slug:            "sunday-million",
		Organizer:       "PokerPro",
		BuyIn:           215,
		PrizePool:       1000000,
		StartTime:       time.Date(2025, 6, 8, 20, 0, 0, 0, time.UTC),
		Status:          models.StatusUpcoming,
		Participants:    4500,
		MaxParticipants: 5000,
		InvestmentPool:  250000,
		MinInvestment:   100,
		ExpectedROI:     18.5,
		RiskLevel:       "medium",
		OrganizerRating: 4.8,
	},
	{
		ID:              2,
		Name:            "High Roller Championship",
		Slug:            "high-roller-championship",
		Organizer:       "ChampionAce",
		BuyIn:           5000,
		PrizePool:       2500000,
		StartTime:       time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC),
		Status:          models.StatusUpcoming,
		Participants:    450,
		MaxParticipants: 500,
		InvestmentPool:  500000,
		MinInvestment:   500,
		ExpectedROI:     25.2,
		RiskLevel:       "high",
		OrganizerRating: 4.9,
	},
	{
		ID:              3,
		Name:            "Daily Grind Series",
		Slug:            "daily-grind-series",
		Organizer:       "TourneyKing",
		BuyIn:           55,
		PrizePool:       100000,
		StartTime:       time.Date(2025, 6, 7, 19, 0, 0, 0, time.UTC),
		Status:          models.StatusLive,
		Participants:    1800,
		MaxParticipants: 2000,
		InvestmentPool:  75000,
		MinInvestment:   50,
		ExpectedROI:     12.8,
		RiskLevel:       "low",
		OrganizerRating: 4.6,
	},
}

// Tournaments returns a copy of the sample dataset. Callers get their own
// slice so the process-lifetime records stay untouched.
func Tournaments() []models.Tournament {
	out := make([]models.Tournament, len(sampleTournaments))
	copy(out, sampleTournaments)
	return out
}

// TournamentByID looks a sample record up by id.
func TournamentByID(id uint) (*models.Tournament, bool) {
	for _, t := range sampleTournaments {
		if t.ID == id {
			t := t
			return &t, true
		}
	}
	return nil, false
}

// Stats aggregates the sample dataset the same way the live dashboard does.
func Stats() *models.PlatformStats {
	stats := &models.PlatformStats{
		TotalTournaments: int64(len(sampleTournaments)),
	}
	for _, t := range sampleTournaments {
		stats.TotalVolume += t.PrizePool
		if t.Status == models.StatusLive {
			stats.ActiveTournaments++
		}
	}
	return stats
}
