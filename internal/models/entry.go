package models

import (
	"time"
)

type Entry struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Text            string    `db:"text" json:"text"`
	Translation     string    `db:"translation" json:"translation"`
	Notes           string    `db:"notes" json:"notes"`
	IsExternalInput bool      `db:"is_external_input" json:"is_external_input"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type NewEntry struct {
	UserID          int64  `validate:"required,min=1"`
	Text            string `validate:"required,max=500"`
	Translation     string `validate:"required,max=500"`
	IsExternalInput bool
}

// EntryView is an entry together with its decoded examples.
type EntryView struct {
	Entry
	Example  *Example  `json:"example"`
	Examples []Example `json:"examples"`
}
