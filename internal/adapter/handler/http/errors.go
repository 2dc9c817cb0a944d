package http

import (
	"errors"
	"net/http"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

// statusForError maps core errors onto the HTTP taxonomy: 400 for bad or
// duplicate input, 401 for bad credentials, 404 for missing rows or links.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrCustomerHasTickets):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrMechanicNotFound),
		errors.Is(err, domain.ErrPartNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
