package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

const stateSchema = `
CREATE TABLE IF NOT EXISTS bot_state (
    id SMALLINT PRIMARY KEY DEFAULT 1,
    cursor BIGINT NOT NULL,
    last_message TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    CONSTRAINT single_row CHECK (id = 1)
);`

// PostgresStateRepository persists the polling state in a single-row table.
type PostgresStateRepository struct {
	db *sql.DB
}

func NewPostgresStateRepository(db *sql.DB) *PostgresStateRepository {
	return &PostgresStateRepository{db: db}
}

// EnsureSchema creates the bot_state table if it does not exist yet.
func (r *PostgresStateRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, stateSchema); err != nil {
		return fmt.Errorf("error creating bot_state table: %w", err)
	}
	return nil
}

func (r *PostgresStateRepository) Load(ctx context.Context) (homework.State, error) {
	query := `SELECT cursor, last_message FROM bot_state WHERE id = 1`
	var s homework.State
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Cursor, &s.LastMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return homework.State{}, homework.ErrStateNotFound
		}
		return homework.State{}, fmt.Errorf("error loading bot state: %w", err)
	}
	return s, nil
}

func (r *PostgresStateRepository) Save(ctx context.Context, s homework.State) error {
	query := `INSERT INTO bot_state (id, cursor, last_message, updated_at)
               VALUES (1, $1, $2, NOW())
               ON CONFLICT (id) DO UPDATE
               SET cursor = EXCLUDED.cursor, last_message = EXCLUDED.last_message, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, s.Cursor, s.LastMessage); err != nil {
		return fmt.Errorf("error saving bot state: %w", err)
	}
	return nil
}
