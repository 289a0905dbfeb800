package storage

import (
	"context"
	"errors"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

var (
	// ErrNotFound means no state has ever been saved to the backend.
	ErrNotFound = errors.New("no saved state")

	// ErrConflict means the revision passed to Save is no longer current:
	// another writer saved in between. The caller must reload and retry;
	// the store never overwrites silently.
	ErrConflict = errors.New("state revision conflict")
)

// StateStore persists the portfolio state as a single versioned document.
//
// Revisions are opaque tokens. Load returns the token of the state it read;
// Save accepts the token the caller last saw and refuses with ErrConflict
// if the backend has moved past it. An empty priorRev asserts that no state
// exists yet.
type StateStore interface {
	Load(ctx context.Context) (models.PortfolioState, string, error)
	Save(ctx context.Context, st models.PortfolioState, priorRev string) (string, error)
	Ping(ctx context.Context) error
}
