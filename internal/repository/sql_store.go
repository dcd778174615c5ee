package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const slotSchema = `
	CREATE TABLE IF NOT EXISTS booth_slots (
		slot_key   TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

// SQLStore keeps each slot in a row of booth_slots. The queries are valid
// for both postgres and sqlite.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, slotSchema)
	return err
}

func (s *SQLStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	query := s.db.Rebind(`SELECT payload FROM booth_slots WHERE slot_key = ?`)

	err := s.db.GetContext(ctx, &payload, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (s *SQLStore) Write(ctx context.Context, key string, payload []byte) error {
	if key == "" {
		return ErrInvalidSlotKey
	}

	query := s.db.Rebind(`
		INSERT INTO booth_slots (slot_key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (slot_key) DO UPDATE
		SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`)

	_, err := s.db.ExecContext(ctx, query, key, string(payload))
	return err
}
