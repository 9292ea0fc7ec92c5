package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
)

const userColumns = `id, username, password_hash, telegram_id, created_at`

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

// CreateUser returns apperr.ErrDuplicate when the username is taken.
func (u *UsersR) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	query := u.db.Rebind(`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?) RETURNING id`)
	if err := u.db.GetContext(ctx, &user.ID, query, user.Username, user.PasswordHash, user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, apperr.ErrDuplicate
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (u *UsersR) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query := u.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE username = ?`)
	if err := u.db.GetContext(ctx, &user, query, username); err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (u *UsersR) UserByID(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	query := u.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?`)
	if err := u.db.GetContext(ctx, &user, query, userID); err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

// EnsureTelegramUser returns the local user linked to telegramID, creating
// it on first contact.
func (u *UsersR) EnsureTelegramUser(ctx context.Context, telegramID int64, username string) (models.User, error) {
	var user models.User
	selectQuery := u.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE telegram_id = ?`)

	err := u.db.GetContext(ctx, &user, selectQuery, telegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}

	insert := u.db.Rebind(`INSERT INTO users (username, password_hash, telegram_id, created_at)
		VALUES (?, '', ?, ?)
		ON CONFLICT DO NOTHING`)
	if _, err := u.db.ExecContext(ctx, insert, username, telegramID, time.Now().UTC()); err != nil {
		return models.User{}, fmt.Errorf("create telegram user: %w", err)
	}

	if err := u.db.GetContext(ctx, &user, selectQuery, telegramID); err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}
