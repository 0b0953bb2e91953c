package memory

import (
	"context"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepository_LoadEmpty(t *testing.T) {
	repo := NewStateRepository()

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, homework.ErrStateNotFound)
}

func TestStateRepository_SaveThenLoad(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, homework.State{Cursor: 1700000000, LastMessage: "hello"}))
	require.NoError(t, repo.Save(ctx, homework.State{Cursor: 1700000600, LastMessage: "hello again"}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, homework.State{Cursor: 1700000600, LastMessage: "hello again"}, got)
}
