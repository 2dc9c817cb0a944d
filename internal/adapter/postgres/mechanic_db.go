package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type MechanicRepository struct {
	db *sql.DB
}

func NewMechanicRepository(db *sql.DB) *MechanicRepository {
	return &MechanicRepository{
		db,
	}
}

func (r *MechanicRepository) CreateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	query := `INSERT INTO mechanics (name, email, phone, salary)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	err := r.db.QueryRowContext(ctx, query, mechanic.Name, mechanic.Email, mechanic.Phone, mechanic.Salary).Scan(
		&mechanic.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating mechanic: %w", err)
	}
	return mechanic, nil
}

func (r *MechanicRepository) GetMechanicByID(ctx context.Context, id int64) (*domain.Mechanic, error) {
	query := `SELECT id, name, email, phone, salary FROM mechanics WHERE id = $1`

	mechanic := &domain.Mechanic{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&mechanic.ID,
		&mechanic.Name,
		&mechanic.Email,
		&mechanic.Phone,
		&mechanic.Salary,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMechanicNotFound
	}
	if err != nil {
		return nil, err
	}
	return mechanic, nil
}

func (r *MechanicRepository) GetMechanicByEmail(ctx context.Context, email string) (*domain.Mechanic, error) {
	query := `SELECT id, name, email, phone, salary FROM mechanics WHERE email = $1`

	mechanic := &domain.Mechanic{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&mechanic.ID,
		&mechanic.Name,
		&mechanic.Email,
		&mechanic.Phone,
		&mechanic.Salary,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMechanicNotFound
	}
	if err != nil {
		return nil, err
	}
	return mechanic, nil
}

func (r *MechanicRepository) ListMechanics(ctx context.Context, limit, offset int) ([]*domain.Mechanic, error) {
	query := `SELECT id, name, email, phone, salary FROM mechanics
	ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mechanics []*domain.Mechanic
	for rows.Next() {
		mechanic := &domain.Mechanic{}
		err := rows.Scan(
			&mechanic.ID,
			&mechanic.Name,
			&mechanic.Email,
			&mechanic.Phone,
			&mechanic.Salary,
		)
		if err != nil {
			return nil, err
		}
		mechanics = append(mechanics, mechanic)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return mechanics, nil
}

func (r *MechanicRepository) UpdateMechanic(ctx context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	query := `UPDATE mechanics
		SET name = $1, email = $2, phone = $3, salary = $4
		WHERE id = $5
		RETURNING id, name, email, phone, salary`

	err := r.db.QueryRowContext(ctx, query,
		mechanic.Name,
		mechanic.Email,
		mechanic.Phone,
		mechanic.Salary,
		mechanic.ID,
	).Scan(
		&mechanic.ID,
		&mechanic.Name,
		&mechanic.Email,
		&mechanic.Phone,
		&mechanic.Salary,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMechanicNotFound
	}
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error updating mechanic: %w", err)
	}
	return mechanic, nil
}

// DeleteMechanic removes the mechanic and its ticket association rows in one
// transaction. Link cleanup is explicit, not a schema cascade.
func (r *MechanicRepository) DeleteMechanic(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM service_mechanics WHERE mechanic_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM mechanics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrMechanicNotFound
	}

	return tx.Commit()
}

// RankMechanicsByTicketCount counts association rows per mechanic, most
// active first. Mechanics with no tickets appear with a zero count. Ties
// break by id so the order is deterministic for a fixed data set.
func (r *MechanicRepository) RankMechanicsByTicketCount(ctx context.Context) ([]*domain.MechanicRank, error) {
	query := `SELECT m.id, m.name, m.email, m.phone, m.salary, COUNT(sm.ticket_id) AS ticket_count
	FROM mechanics m
	LEFT JOIN service_mechanics sm ON sm.mechanic_id = m.id
	GROUP BY m.id
	ORDER BY ticket_count DESC, m.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []*domain.MechanicRank
	for rows.Next() {
		rank := &domain.MechanicRank{}
		err := rows.Scan(
			&rank.Mechanic.ID,
			&rank.Mechanic.Name,
			&rank.Mechanic.Email,
			&rank.Mechanic.Phone,
			&rank.Mechanic.Salary,
			&rank.TicketCount,
		)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return ranks, nil
}
