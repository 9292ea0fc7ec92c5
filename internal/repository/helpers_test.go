package repository

import (
	"context"
	"testing"

	"github.com/DanRulev/ordkort.git/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func createTestUser(t *testing.T, conn *sqlx.DB, username string) int64 {
	t.Helper()

	user, err := NewUsersRepository(conn).CreateUser(context.Background(), username, "hash")
	require.NoError(t, err)
	return user.ID
}
