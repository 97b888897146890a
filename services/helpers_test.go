package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"solcraft-backend/auth"
	"solcraft-backend/mailer"
	"solcraft-backend/middleware"
	"solcraft-backend/models"
	"solcraft-backend/storage"
)

// unavailableStore simulates a store where every connection candidate failed.
type unavailableStore struct{}

var _ storage.Store = unavailableStore{}

func (unavailableStore) CreateUser(context.Context, *models.User) error { return storage.ErrUnavailable }
func (unavailableStore) UserByID(context.Context, uint) (*models.User, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) UserByEmail(context.Context, string) (*models.User, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) UserByUsername(context.Context, string) (*models.User, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) UserByWallet(context.Context, string) (*models.User, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) CreateTournament(context.Context, *models.Tournament) error {
	return storage.ErrUnavailable
}
func (unavailableStore) Tournaments(context.Context) ([]models.Tournament, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) TournamentByID(context.Context, uint) (*models.Tournament, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) UpdateTournament(context.Context, *models.Tournament) error {
	return storage.ErrUnavailable
}
func (unavailableStore) CreateInvestment(context.Context, *models.Investment) error {
	return storage.ErrUnavailable
}
func (unavailableStore) Investments(context.Context) ([]models.Investment, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) CreateApplication(context.Context, *models.OrganizerApplication) error {
	return storage.ErrUnavailable
}
func (unavailableStore) Stats(context.Context) (*models.PlatformStats, error) {
	return nil, storage.ErrUnavailable
}
func (unavailableStore) AdminStats(context.Context) (*models.AdminStats, error) {
	return nil, storage.ErrUnavailable
}

// newTestApp wires the full route surface against the given store, mirroring
// the wiring in main.go.
func newTestApp(store storage.Store) (*fiber.App, *auth.TokenManager) {
	app := fiber.New()
	tokens := auth.NewTokenManager("test-secret", "solcraft", time.Hour)
	hasher := auth.NewBcryptHasher()
	mail := mailer.New("", 0, "", "", "") // unconfigured: no delivery attempted

	authService := NewAuthService(store, tokens, hasher)
	tournamentService := NewTournamentService(store)
	investmentService := NewInvestmentService(store)
	organizerService := NewOrganizerService(store, mail)
	dashboardService := NewDashboardService(store)

	api := app.Group("/api")
	api.Post("/auth/connect", authService.ConnectWallet)
	api.Post("/users/register", authService.Register)
	api.Post("/users/login", authService.Login)
	api.Get("/tournaments", tournamentService.GetAllTournaments)
	api.Get("/tournaments/:id", tournamentService.GetTournamentByID)
	api.Get("/investments", investmentService.GetAllInvestments)
	api.Post("/organizers/apply", organizerService.Apply)
	api.Get("/health", dashboardService.Health)
	api.Get("/dashboard/stats", dashboardService.GetStats)
	api.Get("/admin/dashboard", dashboardService.GetAdminStats)

	secured := api.Group("/", middleware.SessionMiddleware(tokens))
	secured.Post("/tournaments", tournamentService.CreateTournament)
	secured.Patch("/tournaments/:id/status", tournamentService.UpdateTournamentStatus)
	secured.Post("/investments", investmentService.CreateInvestment)

	return app, tokens
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

// seedTournament inserts a tournament directly through the store.
func seedTournament(t *testing.T, store storage.Store, tournament models.Tournament) models.Tournament {
	t.Helper()
	if tournament.StartTime.IsZero() {
		tournament.StartTime = time.Now().Add(24 * time.Hour)
	}
	if tournament.Status == "" {
		tournament.Status = models.StatusUpcoming
	}
	require.NoError(t, store.CreateTournament(context.Background(), &tournament))
	return tournament
}

// seedUser inserts a user directly through the store.
func seedUser(t *testing.T, store storage.Store, user models.User) models.User {
	t.Helper()
	require.NoError(t, store.CreateUser(context.Background(), &user))
	return user
}
