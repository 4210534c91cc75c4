package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StateKey is the key of the single authoritative record.
const StateKey = "main"

// ErrCorrupt marks a blob that exists but does not decode. Callers fall
// back to a fresh state rather than partially applying untrusted data.
var ErrCorrupt = errors.New("corrupt state blob")

// Store persists the serialized application state as one JSON blob.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted state, or nil when none has been saved yet.
// A blob that fails to decode returns an error wrapping ErrCorrupt.
func (s *Store) Load(ctx context.Context) (*SerializedState, error) {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM app_state WHERE key = ?`, StateKey)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}

	var st SerializedState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &st, nil
}

// Save upserts the state blob.
func (s *Store) Save(ctx context.Context, st *SerializedState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("state encode: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, StateKey, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}

// Clear removes the persisted state entirely (full reset).
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, StateKey); err != nil {
		return fmt.Errorf("state clear: %w", err)
	}
	return nil
}
