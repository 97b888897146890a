package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"solcraft-backend/models"
)

// Postgres is the production Store. Every operation resolves its own handle
// through the Resolver and releases it before returning, success or failure.
type Postgres struct {
	resolver *Resolver
}

var _ Store = (*Postgres)(nil)

func NewPostgres(resolver *Resolver) *Postgres {
	return &Postgres{resolver: resolver}
}

// Migrate runs schema migration against whichever candidate connects.
// Callers treat failure as degraded mode, not fatal.
func (p *Postgres) Migrate(ctx context.Context) error {
	db, release, name, err := p.resolver.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Tournament{},
		&models.Investment{},
		&models.OrganizerApplication{},
	); err != nil {
		return fmt.Errorf("migrate via %q: %w", name, err)
	}
	return nil
}

// withHandle runs fn against a freshly resolved handle and always releases it.
func (p *Postgres) withHandle(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, release, _, err := p.resolver.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(db.WithContext(ctx))
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Users ---

func (p *Postgres) CreateUser(ctx context.Context, u *models.User) error {
	return p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Create(u).Error
	})
}

func (p *Postgres) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return translate(db.First(&u, "id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return translate(db.First(&u, "email = ?", email).Error)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return translate(db.First(&u, "username = ?", username).Error)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) UserByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	var u models.User
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return translate(db.First(&u, "wallet_address = ?", walletAddress).Error)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// --- Tournaments ---

func (p *Postgres) CreateTournament(ctx context.Context, t *models.Tournament) error {
	return p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Create(t).Error
	})
}

func (p *Postgres) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	var out []models.Tournament
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Order("id").Find(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Postgres) TournamentByID(ctx context.Context, id uint) (*models.Tournament, error) {
	var t models.Tournament
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return translate(db.First(&t, "id = ?", id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (p *Postgres) UpdateTournament(ctx context.Context, t *models.Tournament) error {
	return p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Save(t).Error
	})
}

// --- Investments ---

func (p *Postgres) CreateInvestment(ctx context.Context, inv *models.Investment) error {
	return p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Create(inv).Error
	})
}

func (p *Postgres) Investments(ctx context.Context) ([]models.Investment, error) {
	var out []models.Investment
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Order("id").Find(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// --- Organizer applications ---

func (p *Postgres) CreateApplication(ctx context.Context, app *models.OrganizerApplication) error {
	return p.withHandle(ctx, func(db *gorm.DB) error {
		return db.Create(app).Error
	})
}

// --- Aggregates ---

func (p *Postgres) Stats(ctx context.Context) (*models.PlatformStats, error) {
	var stats models.PlatformStats
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		if err := db.Model(&models.Tournament{}).Count(&stats.TotalTournaments).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Investment{}).Count(&stats.TotalInvestments).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Tournament{}).
			Select("COALESCE(SUM(prize_pool), 0)").Scan(&stats.TotalVolume).Error; err != nil {
			return err
		}
		return db.Model(&models.Tournament{}).
			Where("status = ?", models.StatusLive).Count(&stats.ActiveTournaments).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (p *Postgres) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	err := p.withHandle(ctx, func(db *gorm.DB) error {
		if err := db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Tournament{}).Count(&stats.Tournaments).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Investment{}).Count(&stats.Investments).Error; err != nil {
			return err
		}
		if err := db.Model(&models.OrganizerApplication{}).Count(&stats.Organizers).Error; err != nil {
			return err
		}
		return db.Model(&models.Tournament{}).
			Select("COALESCE(SUM(prize_pool), 0)").Scan(&stats.TotalVolume).Error
	})
	if err != nil {
		return nil, err
	}
	stats.Revenue = stats.TotalVolume * 0.05
	stats.Status = "operational"
	return &stats, nil
}
