package service

import (
	"errors"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

// asNotFound converts a repository miss into a typed NotFound error and
// passes every other error through unchanged.
func asNotFound(err error, what string, id int32) error {
	if errors.Is(err, repository.ErrNoRows) {
		return domain.NotFound("%s not found with id: %d", what, id)
	}
	return err
}
