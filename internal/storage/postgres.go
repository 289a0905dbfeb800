package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/guttosm/brvmsim/internal/domain/models"
)

// postgresStore keeps the state in the single-row portfolio_state table.
// The revision column is a counter bumped on every save; the WHERE clause
// on the update makes stale writes affect zero rows.
type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a StateStore over an open Postgres handle.
func NewPostgresStore(db *sql.DB) StateStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Load(ctx context.Context) (models.PortfolioState, string, error) {
	var st models.PortfolioState
	var rev int64
	var blob []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT revision, state FROM portfolio_state WHERE id = 1`).Scan(&rev, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return st, "", ErrNotFound
	}
	if err != nil {
		return st, "", fmt.Errorf("postgres load: %w", err)
	}
	if err := json.Unmarshal(blob, &st); err != nil {
		return st, "", fmt.Errorf("postgres load: parse state: %w", err)
	}
	return st, strconv.FormatInt(rev, 10), nil
}

func (s *postgresStore) Save(ctx context.Context, st models.PortfolioState, priorRev string) (string, error) {
	blob, err := json.Marshal(st)
	if err != nil {
		return "", err
	}

	if priorRev == "" {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO portfolio_state (id, revision, state, updated_at)
			 VALUES (1, 1, $1, NOW())
			 ON CONFLICT (id) DO NOTHING`, blob)
		if err != nil {
			return "", fmt.Errorf("postgres save: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return "", fmt.Errorf("postgres save: %w", err)
		}
		if n == 0 {
			// A row already exists; the caller's view predates it.
			return "", ErrConflict
		}
		return "1", nil
	}

	prior, err := strconv.ParseInt(priorRev, 10, 64)
	if err != nil {
		// A token this backend never issued cannot be current.
		return "", fmt.Errorf("malformed revision %q: %w", priorRev, ErrConflict)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE portfolio_state
		 SET revision = revision + 1, state = $2, updated_at = NOW()
		 WHERE id = 1 AND revision = $1`, prior, blob)
	if err != nil {
		return "", fmt.Errorf("postgres save: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("postgres save: %w", err)
	}
	if n == 0 {
		return "", ErrConflict
	}
	return strconv.FormatInt(prior+1, 10), nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
