package ports

import (
	"context"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error)
	GetTicketByID(ctx context.Context, id int64) (*domain.ServiceTicket, error)
	ListTickets(ctx context.Context, limit, offset int) ([]*domain.ServiceTicket, error)
	ListTicketsByCustomerID(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error)
	DeleteTicket(ctx context.Context, id int64) error

	// EnsureMechanicLink creates the (ticket, mechanic) association row if
	// absent. Re-linking an already-linked mechanic is a no-op.
	EnsureMechanicLink(ctx context.Context, ticketID, mechanicID int64) error
	// RemoveMechanicLink deletes the association row, returning
	// domain.ErrLinkNotFound when no such row exists.
	RemoveMechanicLink(ctx context.Context, ticketID, mechanicID int64) error
	// EditMechanicLinks applies removals then additions in one transaction.
	// Absent links in removeIDs and unknown mechanics in addIDs are skipped.
	EditMechanicLinks(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) error
	// EnsurePartLink mirrors EnsureMechanicLink for inventory parts.
	EnsurePartLink(ctx context.Context, ticketID, partID int64) error
}

type TicketService interface {
	CreateTicket(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error)
	GetTicketByID(ctx context.Context, id int64) (*domain.ServiceTicket, error)
	ListTickets(ctx context.Context, page, perPage int) ([]*domain.ServiceTicket, error)
	ListTicketsByCustomerID(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error)
	DeleteTicket(ctx context.Context, id int64) error
	AssignMechanic(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error)
	RemoveMechanic(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error)
	EditMechanics(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) (*domain.ServiceTicket, error)
	AddPart(ctx context.Context, ticketID, partID int64) (*domain.ServiceTicket, error)
}
