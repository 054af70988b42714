package handlers

import (
	"errors"

	"github.com/pocketbase/pocketbase/apis"

	"munasabat-backend/internal/status"
)

// notFoundOr maps ErrNotFound to a 404 and everything else to a 400.
func notFoundOr(err error, message string) error {
	if errors.Is(err, status.ErrNotFound) {
		return apis.NewNotFoundError(message, err)
	}
	return apis.NewBadRequestError(message, err)
}
