package persistence

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/marketplace-service/internal/config"
	"github.com/spec-kit/marketplace-service/internal/repository"
)

// Pinger reports backend connectivity for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is the document backend selected by STORE_DRIVER.
type Store struct {
	Collections repository.Collections
	// Checks names the backends probed by /health/ready.
	Checks map[string]Pinger
	close  func()
}

// Open connects the configured backend and returns its collection handles.
// The postgres driver also applies pending migrations when enabled.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		m, err := NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		return &Store{
			Collections: repository.NewMongoCollections(m.Database),
			Checks:      map[string]Pinger{"mongo": m},
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				m.Close(ctx)
			},
		}, nil

	case config.StoreDriverPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.Pool, cfg.Postgres.MigrationsDir, logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return &Store{
			Collections: repository.NewPostgresCollections(pg.Pool),
			Checks:      map[string]Pinger{"postgres": pg},
			close:       pg.Close,
		}, nil

	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return &Store{
			Collections: repository.NewMemoryCollections(),
			Checks:      map[string]Pinger{},
			close:       func() {},
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// Close disconnects the backend.
func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}
