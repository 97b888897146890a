package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solcraft-backend/fallback"
	"solcraft-backend/models"
	"solcraft-backend/storage"
)

func TestCreateInvestment(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)

	user := seedUser(t, store, models.User{Username: "alice", Email: "alice@example.com"})
	tournament := seedTournament(t, store, models.Tournament{
		Name: "Sunday Million", Organizer: "PokerPro",
		MinInvestment: 100, InvestmentPool: 250000, RiskLevel: "medium",
	})

	token, err := tokens.Issue(user.ID, "")
	require.NoError(t, err)

	resp, body := doJSON(t, app, "POST", "/api/investments", token, map[string]interface{}{
		"tournament_id": tournament.ID,
		"amount":        1500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	investment := data["investment"].(map[string]interface{})
	assert.Equal(t, "active", investment["status"])
	assert.Equal(t, float64(1500), investment["amount"])
	assert.Equal(t, float64(1500), investment["currentValue"])
	// Denormalized from the tournament at creation time.
	assert.Equal(t, "Sunday Million", investment["tournament"])
	assert.Equal(t, "PokerPro", investment["organizer"])
	assert.Equal(t, "medium", investment["riskLevel"])
	assert.InDelta(t, 0.6, investment["sharePercentage"], 0.0001)
}

func TestCreateInvestmentBelowMinimum(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)

	user := seedUser(t, store, models.User{Username: "alice"})
	tournament := seedTournament(t, store, models.Tournament{Name: "Sunday Million", MinInvestment: 100})

	token, err := tokens.Issue(user.ID, "")
	require.NoError(t, err)

	// Rejected with the minimum named; nothing inserted.
	resp, body := doJSON(t, app, "POST", "/api/investments", token, map[string]interface{}{
		"tournament_id": tournament.ID,
		"amount":        50,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "minimum investment is $100", body["message"])

	investments, err := store.Investments(t.Context())
	require.NoError(t, err)
	assert.Empty(t, investments)
}

func TestCreateInvestmentMissingReferences(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)

	user := seedUser(t, store, models.User{Username: "alice"})
	seedTournament(t, store, models.Tournament{Name: "Sunday Million", MinInvestment: 100})

	// Non-existent tournament: 404 before any insert.
	token, err := tokens.Issue(user.ID, "")
	require.NoError(t, err)
	resp, body := doJSON(t, app, "POST", "/api/investments", token, map[string]interface{}{
		"tournament_id": 99,
		"amount":        500,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "tournament not found", body["message"])

	// Token subject no longer exists: 404 as well.
	stale, err := tokens.Issue(999, "")
	require.NoError(t, err)
	resp, body = doJSON(t, app, "POST", "/api/investments", stale, map[string]interface{}{
		"tournament_id": 1,
		"amount":        500,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "user not found", body["message"])

	investments, err := store.Investments(t.Context())
	require.NoError(t, err)
	assert.Empty(t, investments)
}

func TestCreateInvestmentValidation(t *testing.T) {
	store := storage.NewMemory()
	app, tokens := newTestApp(store)
	user := seedUser(t, store, models.User{Username: "alice"})
	token, err := tokens.Issue(user.ID, "")
	require.NoError(t, err)

	resp, body := doJSON(t, app, "POST", "/api/investments", token, map[string]interface{}{
		"amount": 500,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing required field: tournament_id", body["message"])

	resp, body = doJSON(t, app, "POST", "/api/investments", token, map[string]interface{}{
		"tournament_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing required field: amount", body["message"])
}

func TestGetInvestmentsDegradesToEmptyList(t *testing.T) {
	app, _ := newTestApp(unavailableStore{})

	resp, body := doJSON(t, app, "GET", "/api/investments", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, fallback.Note, body["note"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total"])
}
