package database

import (
	"context"
	"os"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a real server: TEST_DATABASE_URL=postgres://... go test ./...
func TestPostgresStateRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	db, err := NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresStateRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = db.ExecContext(ctx, `DELETE FROM bot_state`)
	require.NoError(t, err)

	_, err = repo.Load(ctx)
	assert.ErrorIs(t, err, homework.ErrStateNotFound)

	require.NoError(t, repo.Save(ctx, homework.State{Cursor: 1700000000, LastMessage: "first"}))
	require.NoError(t, repo.Save(ctx, homework.State{Cursor: 1700000600, LastMessage: "second"}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, homework.State{Cursor: 1700000600, LastMessage: "second"}, got)
}
