package domain

import "errors"

// Sentinel errors for the whole core. Repositories wrap these with context,
// handlers map them to HTTP statuses with errors.Is.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMechanicNotFound = errors.New("mechanic not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrTicketNotFound   = errors.New("ticket not found")

	// ErrLinkNotFound means the ticket exists but the specific association
	// row does not. Removal of a missing link is an error, not a no-op.
	ErrLinkNotFound = errors.New("mechanic not assigned to this ticket")

	// ErrValidation wraps struct-validation failures on input shapes.
	ErrValidation = errors.New("validation error")

	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCustomerHasTickets guards customer deletion while service tickets
	// still reference the row.
	ErrCustomerHasTickets = errors.New("customer has service tickets")
)
