package storage

import (
	"context"
	"errors"

	"solcraft-backend/models"
)

// Sentinel errors carrying the store-level failure taxonomy. Services
// translate these into HTTP responses; nothing store-shaped leaks further up.
var (
	// ErrNotFound: the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable: no connection candidate succeeded. Read paths degrade
	// to fallback data on this; write paths surface a database error.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the persistence interface the handlers are written against.
// Two implementations exist: Postgres (production, resolved per operation
// through the connection-candidate list) and Memory (tests). The choice is
// made once at startup, never branched on per call site.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByWallet(ctx context.Context, walletAddress string) (*models.User, error)

	// Tournaments
	CreateTournament(ctx context.Context, t *models.Tournament) error
	Tournaments(ctx context.Context) ([]models.Tournament, error)
	TournamentByID(ctx context.Context, id uint) (*models.Tournament, error)
	UpdateTournament(ctx context.Context, t *models.Tournament) error

	// Investments
	CreateInvestment(ctx context.Context, inv *models.Investment) error
	Investments(ctx context.Context) ([]models.Investment, error)

	// Organizer applications
	CreateApplication(ctx context.Context, app *models.OrganizerApplication) error

	// Aggregates
	Stats(ctx context.Context) (*models.PlatformStats, error)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
}
