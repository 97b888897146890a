package storage

import (
	"context"
	"sync"

	"solcraft-backend/models"
)

// Memory is the map-backed Store used in tests and local development without
// a database. Same semantics as Postgres minus persistence.
type Memory struct {
	mu sync.RWMutex

	users        map[uint]models.User
	tournaments  map[uint]models.Tournament
	investments  map[uint]models.Investment
	applications map[uint]models.OrganizerApplication

	nextUserID        uint
	nextTournamentID  uint
	nextInvestmentID  uint
	nextApplicationID uint
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:        make(map[uint]models.User),
		tournaments:  make(map[uint]models.Tournament),
		investments:  make(map[uint]models.Investment),
		applications: make(map[uint]models.OrganizerApplication),
	}
}

// --- Users ---

func (m *Memory) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextUserID++
	u.ID = m.nextUserID
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UserByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByWallet(_ context.Context, walletAddress string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.WalletAddress == walletAddress {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// --- Tournaments ---

func (m *Memory) CreateTournament(_ context.Context, t *models.Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTournamentID++
	t.ID = m.nextTournamentID
	m.tournaments[t.ID] = *t
	return nil
}

func (m *Memory) Tournaments(_ context.Context) ([]models.Tournament, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Tournament, 0, len(m.tournaments))
	for id := uint(1); id <= m.nextTournamentID; id++ {
		if t, ok := m.tournaments[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *Memory) TournamentByID(_ context.Context, id uint) (*models.Tournament, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.tournaments[id]; ok {
		return &t, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateTournament(_ context.Context, t *models.Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tournaments[t.ID]; !ok {
		return ErrNotFound
	}
	m.tournaments[t.ID] = *t
	return nil
}

// --- Investments ---

func (m *Memory) CreateInvestment(_ context.Context, inv *models.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextInvestmentID++
	inv.ID = m.nextInvestmentID
	m.investments[inv.ID] = *inv
	return nil
}

func (m *Memory) Investments(_ context.Context) ([]models.Investment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Investment, 0, len(m.investments))
	for id := uint(1); id <= m.nextInvestmentID; id++ {
		if inv, ok := m.investments[id]; ok {
			out = append(out, inv)
		}
	}
	return out, nil
}

// --- Organizer applications ---

func (m *Memory) CreateApplication(_ context.Context, app *models.OrganizerApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextApplicationID++
	app.ID = m.nextApplicationID
	m.applications[app.ID] = *app
	return nil
}

// --- Aggregates ---

func (m *Memory) Stats(_ context.Context) (*models.PlatformStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := models.PlatformStats{
		TotalTournaments: int64(len(m.tournaments)),
		TotalInvestments: int64(len(m.investments)),
	}
	for _, t := range m.tournaments {
		stats.TotalVolume += t.PrizePool
		if t.Status == models.StatusLive {
			stats.ActiveTournaments++
		}
	}
	return &stats, nil
}

func (m *Memory) AdminStats(_ context.Context) (*models.AdminStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := models.AdminStats{
		Users:       int64(len(m.users)),
		Tournaments: int64(len(m.tournaments)),
		Investments: int64(len(m.investments)),
		Organizers:  int64(len(m.applications)),
		Status:      "operational",
	}
	for _, t := range m.tournaments {
		stats.TotalVolume += t.PrizePool
	}
	stats.Revenue = stats.TotalVolume * 0.05
	return &stats, nil
}
