package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{
		db,
	}
}

func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *domain.ServiceTicket) (*domain.ServiceTicket, error) {
	query := `INSERT INTO service_tickets (vin, service_date, service_desc, customer_id)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	err := r.db.QueryRowContext(ctx, query, ticket.VIN, ticket.ServiceDate, ticket.ServiceDesc, ticket.CustomerID).Scan(
		&ticket.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error creating ticket: %w", err)
	}
	ticket.Mechanics = []domain.Mechanic{}
	ticket.Parts = []domain.Part{}
	return ticket, nil
}

func (r *TicketRepository) GetTicketByID(ctx context.Context, id int64) (*domain.ServiceTicket, error) {
	query := `SELECT id, vin, service_date, service_desc, customer_id
	FROM service_tickets WHERE id = $1`

	ticket := &domain.ServiceTicket{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.VIN,
		&ticket.ServiceDate,
		&ticket.ServiceDesc,
		&ticket.CustomerID,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}

	if ticket.Mechanics, err = r.ticketMechanics(ctx, id); err != nil {
		return nil, err
	}
	if ticket.Parts, err = r.ticketParts(ctx, id); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ticketMechanics loads the assigned mechanics with an explicit join over
// the association table.
func (r *TicketRepository) ticketMechanics(ctx context.Context, ticketID int64) ([]domain.Mechanic, error) {
	query := `SELECT m.id, m.name, m.email, m.phone, m.salary
	FROM mechanics m
	JOIN service_mechanics sm ON sm.mechanic_id = m.id
	WHERE sm.ticket_id = $1
	ORDER BY m.id`

	rows, err := r.db.QueryContext(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mechanics := []domain.Mechanic{}
	for rows.Next() {
		var m domain.Mechanic
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Salary); err != nil {
			return nil, err
		}
		mechanics = append(mechanics, m)
	}
	return mechanics, rows.Err()
}

func (r *TicketRepository) ticketParts(ctx context.Context, ticketID int64) ([]domain.Part, error) {
	query := `SELECT p.id, p.name, p.price
	FROM inventory p
	JOIN service_parts sp ON sp.part_id = p.id
	WHERE sp.ticket_id = $1
	ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parts := []domain.Part{}
	for rows.Next() {
		var p domain.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func (r *TicketRepository) ListTickets(ctx context.Context, limit, offset int) ([]*domain.ServiceTicket, error) {
	query := `SELECT id, vin, service_date, service_desc, customer_id
	FROM service_tickets ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return r.collectTickets(ctx, rows)
}

func (r *TicketRepository) ListTicketsByCustomerID(ctx context.Context, customerID int64) ([]*domain.ServiceTicket, error) {
	query := `SELECT id, vin, service_date, service_desc, customer_id
	FROM service_tickets WHERE customer_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	return r.collectTickets(ctx, rows)
}

func (r *TicketRepository) collectTickets(ctx context.Context, rows *sql.Rows) ([]*domain.ServiceTicket, error) {
	defer rows.Close()

	var tickets []*domain.ServiceTicket
	for rows.Next() {
		ticket := &domain.ServiceTicket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.VIN,
			&ticket.ServiceDate,
			&ticket.ServiceDesc,
			&ticket.CustomerID,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, ticket := range tickets {
		var err error
		if ticket.Mechanics, err = r.ticketMechanics(ctx, ticket.ID); err != nil {
			return nil, err
		}
		if ticket.Parts, err = r.ticketParts(ctx, ticket.ID); err != nil {
			return nil, err
		}
	}
	return tickets, nil
}

// DeleteTicket removes the ticket and both kinds of association rows in one
// transaction.
func (r *TicketRepository) DeleteTicket(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM service_mechanics WHERE ticket_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM service_parts WHERE ticket_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM service_tickets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrTicketNotFound
	}

	return tx.Commit()
}

// EnsureMechanicLink inserts the association row if absent. ON CONFLICT
// keeps the (ticket_id, mechanic_id) pair unique without a separate
// check-then-insert round trip.
func (r *TicketRepository) EnsureMechanicLink(ctx context.Context, ticketID, mechanicID int64) error {
	query := `INSERT INTO service_mechanics (ticket_id, mechanic_id)
	VALUES ($1, $2)
	ON CONFLICT (ticket_id, mechanic_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, ticketID, mechanicID); err != nil {
		return fmt.Errorf("error assigning mechanic: %w", err)
	}
	return nil
}

func (r *TicketRepository) RemoveMechanicLink(ctx context.Context, ticketID, mechanicID int64) error {
	query := `DELETE FROM service_mechanics WHERE ticket_id = $1 AND mechanic_id = $2`

	result, err := r.db.ExecContext(ctx, query, ticketID, mechanicID)
	if err != nil {
		return fmt.Errorf("error removing mechanic: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// EditMechanicLinks applies the batch atomically: removals first (absent
// links are skipped), then additions (unknown mechanics and existing links
// are skipped). An id in both lists therefore ends up linked.
func (r *TicketRepository) EditMechanicLinks(ctx context.Context, ticketID int64, addIDs, removeIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, mechanicID := range removeIDs {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM service_mechanics WHERE ticket_id = $1 AND mechanic_id = $2`,
			ticketID, mechanicID)
		if err != nil {
			return fmt.Errorf("error removing mechanic %d: %w", mechanicID, err)
		}
	}

	for _, mechanicID := range addIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO service_mechanics (ticket_id, mechanic_id)
			SELECT $1, id FROM mechanics WHERE id = $2
			ON CONFLICT (ticket_id, mechanic_id) DO NOTHING`,
			ticketID, mechanicID)
		if err != nil {
			return fmt.Errorf("error adding mechanic %d: %w", mechanicID, err)
		}
	}

	return tx.Commit()
}

func (r *TicketRepository) EnsurePartLink(ctx context.Context, ticketID, partID int64) error {
	query := `INSERT INTO service_parts (ticket_id, part_id)
	VALUES ($1, $2)
	ON CONFLICT (ticket_id, part_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, ticketID, partID); err != nil {
		return fmt.Errorf("error adding part: %w", err)
	}
	return nil
}
