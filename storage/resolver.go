package storage

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"solcraft-backend/metrics"
)

// Candidate is one configured connection string plus the name it is reported
// under ("direct", "pooled", "generic").
type Candidate struct {
	Name string
	DSN  string
}

// Resolver obtains a live database handle by trying the configured candidates
// in priority order. The first candidate that connects within the timeout is
// used; lower-priority candidates are not retried once one succeeds. Handles
// are acquired per operation and must be released on every exit path — there
// is no cross-request pooling in this design.
type Resolver struct {
	candidates     []Candidate
	connectTimeout time.Duration
}

func NewResolver(candidates []Candidate, connectTimeout time.Duration) *Resolver {
	if connectTimeout <= 0 {
		connectTimeout = 5 * time.Second
	}
	return &Resolver{candidates: candidates, connectTimeout: connectTimeout}
}

// Candidates returns the configured candidate list (read-only after startup).
func (r *Resolver) Candidates() []Candidate {
	out := make([]Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// Acquire resolves a working handle. On success it returns the handle, a
// release func that must be called on every exit path, and the name of the
// candidate that won. When no candidate succeeds it returns ErrUnavailable —
// never a panic; the caller decides whether to degrade or fail.
func (r *Resolver) Acquire(ctx context.Context) (*gorm.DB, func(), string, error) {
	if len(r.candidates) == 0 {
		log.Println("⚠️  [DB] no database candidates configured")
		return nil, nil, "", fmt.Errorf("no database candidates configured: %w", ErrUnavailable)
	}

	for _, cand := range r.candidates {
		db, err := r.tryCandidate(ctx, cand)
		if err != nil {
			metrics.StoreAcquireTotal.WithLabelValues(cand.Name, "failure").Inc()
			log.Printf("⚠️  [DB] candidate %q failed: %v", cand.Name, err)
			continue
		}
		metrics.StoreAcquireTotal.WithLabelValues(cand.Name, "success").Inc()
		sqlDB, err := db.DB()
		if err != nil {
			continue
		}
		release := func() {
			if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️  [DB] release failed: %v", err)
			}
		}
		return db, release, cand.Name, nil
	}

	return nil, nil, "", fmt.Errorf("all %d candidates failed: %w", len(r.candidates), ErrUnavailable)
}

func (r *Resolver) tryCandidate(ctx context.Context, cand Candidate) (*gorm.DB, error) {
	dsn := NormalizeDSN(cand.DSN)

	// DisableAutomaticPing so the bounded PingContext below is the only
	// connection attempt; gorm's own ping has no timeout.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One handle per operation, released by the caller.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, r.connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// NormalizeDSN coerces a candidate to the supported connection prefix and
// attaches a transport-security mode when none is set. Key=value DSNs pass
// through untouched.
func NormalizeDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgresql://") {
		dsn = "postgres://" + strings.TrimPrefix(dsn, "postgresql://")
	}
	if !strings.HasPrefix(dsn, "postgres://") {
		return dsn
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return dsn
	}
	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
