package service

import (
	"errors"

	"github.com/DanRulev/ordkort.git/internal/apperr"
)

// storeErr maps a repository error: a missing row becomes NOT_FOUND for
// what, anything else a persistence failure.
func storeErr(err error, what string) error {
	if errors.Is(err, apperr.ErrRecordNotFound) {
		return apperr.NewNotFound(what)
	}
	return apperr.NewPersistence(err)
}
