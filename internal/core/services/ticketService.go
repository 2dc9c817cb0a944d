package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mechshop/autoshop-api/internal/core/domain"
	"github.com/mechshop/autoshop-api/internal/core/ports"
)

type TicketService struct {
	ticketRepo   ports.TicketRepository
	customerRepo ports.CustomerRepository
	mechanicRepo ports.MechanicRepository
	partRepo     ports.PartRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewTicketService(
	ticketRepo ports.TicketRepository,
	customerRepo ports.CustomerRepository,
	mechanicRepo ports.MechanicRepository,
	partRepo ports.PartRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *TicketService {
	return &TicketService{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		mechanicRepo: mechanicRepo,
		partRepo:     partRepo,
		logger:       logger,
		validate:     validate,
	}
}

func (s *TicketService) CreateTicket(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error) {
	if err := s.validate.Struct(ticket); err != nil {
		s.logger.Error("Ticket validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.customerRepo.GetCustomerByID(ctx, ticket.CustomerID); err != nil {
		return nil, err
	}

	created, err := s.ticketRepo.CreateTicket(ctx, ticket)
	if err != nil {
		s.logger.Error("Failed to create ticket", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": ticket.CustomerID,
		})
		return nil, err
	}

	s.logger.Info("Ticket created successfully", map[string]interface{}{
		"ticket_id":   created.ID,
		"customer_id": created.CustomerID,
	})
	return created, nil
}

func (s *TicketService) GetTicketByID(ctx context.Context, id int64) (*domain.ServiceTicket, error) {
	ticket, err := s.ticketRepo.GetTicketByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get ticket", map[string]interface{}{
			"error":     err.Error(),
			"ticket_id": id,
		})
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) ListTickets(ctx context.Context, page, perPage int) ([]*domain.ServiceTicket, error) {
	limit, offset := pageWindow(page, perPage)
	tickets, err := s.ticketRepo.ListTickets(ctx, limit, offset)
	if err != nil {
		s.logger.Error("Failed to list tickets", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return tickets, nil
}

func (s *TicketService) ListTicketsByCustomerID(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error) {
	tickets, err := s.ticketRepo.ListTicketsByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to list customer tickets", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}
	return tickets, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, id int64) error {
	if err := s.ticketRepo.DeleteTicket(ctx, id); err != nil {
		s.logger.Error("Failed to delete ticket", map[string]interface{}{
			"error":     err.Error(),
			"ticket_id": id,
		})
		return err
	}

	s.logger.Info("Ticket deleted successfully", map[string]interface{}{
		"ticket_id": id,
	})
	return nil
}

// AssignMechanic links the mechanic to the ticket. Assigning an already
// assigned mechanic changes nothing and still returns the ticket state.
func (s *TicketService) AssignMechanic(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error) {
	if _, err := s.ticketRepo.GetTicketByID(ctx, ticketID); err != nil {
		return nil, err
	}
	if _, err := s.mechanicRepo.GetMechanicByID(ctx, mechanicID); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.EnsureMechanicLink(ctx, ticketID, mechanicID); err != nil {
		s.logger.Error("Failed to assign mechanic", map[string]interface{}{
			"error":       err.Error(),
			"ticket_id":   ticketID,
			"mechanic_id": mechanicID,
		})
		return nil, err
	}

	s.logger.Info("Mechanic assigned to ticket", map[string]interface{}{
		"ticket_id":   ticketID,
		"mechanic_id": mechanicID,
	})
	return s.ticketRepo.GetTicketByID(ctx, ticketID)
}

// RemoveMechanic unlinks the mechanic. Unlike assignment, removing a link
// that does not exist is an error, not a no-op.
func (s *TicketService) RemoveMechanic(ctx context.Context, ticketID, mechanicID int64) (*domain.ServiceTicket, error) {
	if _, err := s.ticketRepo.GetTicketByID(ctx, ticketID); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.RemoveMechanicLink(ctx, ticketID, mechanicID); err != nil {
		return nil, err
	}

	s.logger.Info("Mechanic removed from ticket", map[string]interface{}{
		"ticket_id":   ticketID,
		"mechanic_id": mechanicID,
	})
	return s.ticketRepo.GetTicketByID(ctx, ticketID)
}

// EditMechanics applies a batch of link changes, removals before additions,
// so an id in both lists ends up linked.
func (s *TicketService) EditMechanics(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) (*domain.ServiceTicket, error) {
	if _, err := s.ticketRepo.GetTicketByID(ctx, ticketID); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.EditMechanicLinks(ctx, ticketID, addIDs, removeIDs); err != nil {
		s.logger.Error("Failed to edit ticket mechanics", map[string]interface{}{
			"error":     err.Error(),
			"ticket_id": ticketID,
		})
		return nil, err
	}

	s.logger.Info("Ticket mechanics edited", map[string]interface{}{
		"ticket_id":     ticketID,
		"added_count":   len(addIDs),
		"removed_count": len(removeIDs),
	})
	return s.ticketRepo.GetTicketByID(ctx, ticketID)
}

func (s *TicketService) AddPart(ctx context.Context, ticketID, partID int64) (*domain.ServiceTicket, error) {
	if _, err := s.ticketRepo.GetTicketByID(ctx, ticketID); err != nil {
		return nil, err
	}
	if _, err := s.partRepo.GetPartByID(ctx, partID); err != nil {
		return nil, err
	}

	if err := s.ticketRepo.EnsurePartLink(ctx, ticketID, partID); err != nil {
		s.logger.Error("Failed to add part to ticket", map[string]interface{}{
			"error":     err.Error(),
			"ticket_id": ticketID,
			"part_id":   partID,
		})
		return nil, err
	}

	s.logger.Info("Part added to ticket", map[string]interface{}{
		"ticket_id": ticketID,
		"part_id":   partID,
	})
	return s.ticketRepo.GetTicketByID(ctx, ticketID)
}
