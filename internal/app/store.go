package app

import (
	"fmt"

	"github.com/guttosm/brvmsim/config"
	"github.com/guttosm/brvmsim/internal/storage"
)

// newStateStore builds the persistence backend named by PERSISTENCE_BACKEND.
//
// The second return value releases whatever the backend holds open; it is
// a no-op for the memory and github backends and closes the connection
// pool for postgres.
func newStateStore(cfg config.PersistenceConfig) (storage.StateStore, func(), error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil

	case "github":
		return storage.NewGitHubStore(cfg.GitHub), func() {}, nil

	case "postgres":
		db, err := postgresOpener(cfg.Postgres)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return storage.NewPostgresStore(db), func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown persistence backend %q", cfg.Backend)
	}
}
