package repository

import (
	"context"
	"testing"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersR_SQLite(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)
	repo := NewUsersRepository(conn)

	created, err := repo.CreateUser(ctx, "liza", "hash")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = repo.CreateUser(ctx, "liza", "other")
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	got, err := repo.UserByUsername(ctx, "liza")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.False(t, got.TelegramID.Valid)

	byID, err := repo.UserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "liza", byID.Username)

	_, err = repo.UserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)

	tg, err := repo.EnsureTelegramUser(ctx, 4242, "tg_4242")
	require.NoError(t, err)
	assert.True(t, tg.TelegramID.Valid)
	assert.EqualValues(t, 4242, tg.TelegramID.Int64)

	again, err := repo.EnsureTelegramUser(ctx, 4242, "tg_4242")
	require.NoError(t, err)
	assert.Equal(t, tg.ID, again.ID, "second contact reuses the user")
}
