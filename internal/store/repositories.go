package store

import (
	"context"
	"fmt"

	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
)

// Repositories bundles the three data-access layers handed to the service
// layer.
type Repositories struct {
	Players  PlayerRepository
	Scores   ScoreRepository
	Progress ProgressRepository
}

// NewRepositories constructs all repositories over the shared database
// handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Players:  NewPlayerRepository(db, logger),
		Scores:   NewScoreRepository(db, logger),
		Progress: NewProgressRepository(db, logger),
	}
}

// NewConnect opens the database selected by cfg.Driver and returns the
// connected handle.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
