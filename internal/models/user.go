package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int64         `db:"id" json:"id"`
	Username     string        `db:"username" json:"username"`
	PasswordHash string        `db:"password_hash" json:"-"`
	TelegramID   sql.NullInt64 `db:"telegram_id" json:"-"`
	CreatedAt    time.Time     `db:"created_at" json:"-"`
}

type Credentials struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=4,max=128"`
}
