package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solcraft-backend/fallback"
	"solcraft-backend/models"
	"solcraft-backend/storage"
)

func TestGetTournamentsLive(t *testing.T) {
	store := storage.NewMemory()
	app, _ := newTestApp(store)

	seedTournament(t, store, models.Tournament{Name: "Sunday Million", PrizePool: 1000000})
	seedTournament(t, store, models.Tournament{Name: "Daily Grind", PrizePool: 100000})

	resp, body := doJSON(t, app, "GET", "/api/tournaments", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])

	// Live responses carry no degradation marker.
	_, degraded := body["note"]
	assert.False(t, degraded)
}

func TestGetTournamentsFallsBackWhenStoreUnavailable(t *testing.T) {
	app, _ := newTestApp(unavailableStore{})

	// Never a 500 on this read path: 200 plus the fallback dataset and note.
	resp, body := doJSON(t, app, "GET", "/api/tournaments", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, fallback.Note, body["note"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])
}

func TestGetTournamentByID(t *testing.T) {
	store := storage.NewMemory()
	app, _ := newTestApp(store)

	seeded := seedTournament(t, store, models.Tournament{Name: "Sunday Million", PrizePool: 1000000})

	resp, body := doJSON(t, app, "GET", "/api/tournaments/1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	tournament := data["tournament"].(map[string]interface{})
	assert.Equal(t, seeded.Name, tournament["name"])

	resp, body = doJSON(t, app, "GET", "/api/tournaments/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "tournament not found", body["message"])
}

func TestGetTournamentByIDFallback(t *testing.T) {
	app, _ := newTestApp(unavailableStore{})

	// Present in the fallback dataset: degraded 200 with the note.
	resp, body := doJSON(t, app, "GET", "/api/tournaments/2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fallback.Note, body["note"])

	// Absent from both sources: 404.
	resp, _ = doJSON(t, app, "GET", "/api/tournaments/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateTournament(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)
	token, err := tokens.Issue(1, "")
	require.NoError(t, err)

	resp, body := doJSON(t, app, "POST", "/api/tournaments", token, map[string]interface{}{
		"name":            "High Roller Championship",
		"organizer":       "ChampionAce",
		"buyIn":           5000,
		"prizePool":       2500000,
		"startDate":       "2026-10-01",
		"startTime":       "18:00",
		"maxParticipants": 500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	tournament := data["tournament"].(map[string]interface{})
	assert.Equal(t, "upcoming", tournament["status"])
	assert.Equal(t, "high-roller-championship", tournament["slug"])
	// Original-platform defaults apply when omitted.
	assert.Equal(t, float64(50), tournament["minInvestment"])
	assert.Equal(t, float64(15), tournament["expectedROI"])
	assert.Equal(t, "medium", tournament["riskLevel"])
}

func TestCreateTournamentValidation(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)
	token, err := tokens.Issue(1, "")
	require.NoError(t, err)

	resp, body := doJSON(t, app, "POST", "/api/tournaments", token, map[string]interface{}{
		"buyIn": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing required field: name", body["message"])

	resp, body = doJSON(t, app, "POST", "/api/tournaments", token, map[string]interface{}{
		"name": "X", "buyIn": 100, "prizePool": 1000,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing required field: startDate", body["message"])
}

func TestCreateTournamentRequiresAuth(t *testing.T) {
	store := storage.NewMemory()
	app, _ := newTestApp(store)

	resp, _ := doJSON(t, app, "POST", "/api/tournaments", "", map[string]interface{}{
		"name": "X",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateTournamentStoreUnavailableIs500(t *testing.T) {
	app, tokens := newTestApp(unavailableStore{})
	token, err := tokens.Issue(1, "")
	require.NoError(t, err)

	// Writes never succeed against fallback data.
	resp, body := doJSON(t, app, "POST", "/api/tournaments", token, map[string]interface{}{
		"name":            "X",
		"buyIn":           100,
		"prizePool":       1000,
		"startDate":       "2026-10-01",
		"startTime":       "18:00",
		"maxParticipants": 10,
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "database error", body["message"])
}

func TestUpdateTournamentStatusForwardOnly(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)
	token, err := tokens.Issue(1, "")
	require.NoError(t, err)

	seedTournament(t, store, models.Tournament{
		Name: "Sunday Million", Status: models.StatusUpcoming, StartTime: time.Now(),
	})

	// Forward: upcoming → live
	resp, body := doJSON(t, app, "PATCH", "/api/tournaments/1/status", token, map[string]interface{}{
		"status": "live",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	tournament := data["tournament"].(map[string]interface{})
	assert.Equal(t, "live", tournament["status"])

	// Backward: live → upcoming is rejected
	resp, body = doJSON(t, app, "PATCH", "/api/tournaments/1/status", token, map[string]interface{}{
		"status": "upcoming",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"], "invalid status transition")

	// Unknown status
	resp, _ = doJSON(t, app, "PATCH", "/api/tournaments/1/status", token, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
