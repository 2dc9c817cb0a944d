package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mechshop/autoshop-api/internal/core/domain"
)

type PartRepository struct {
	db *sql.DB
}

func NewPartRepository(db *sql.DB) *PartRepository {
	return &PartRepository{
		db,
	}
}

func (r *PartRepository) CreatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	query := `INSERT INTO inventory (name, price)
	VALUES ($1, $2)
	RETURNING id`

	err := r.db.QueryRowContext(ctx, query, part.Name, part.Price).Scan(&part.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating part: %w", err)
	}
	return part, nil
}

func (r *PartRepository) GetPartByID(ctx context.Context, id int64) (*domain.Part, error) {
	query := `SELECT id, name, price FROM inventory WHERE id = $1`

	part := &domain.Part{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&part.ID, &part.Name, &part.Price)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPartNotFound
	}
	if err != nil {
		return nil, err
	}
	return part, nil
}

func (r *PartRepository) ListParts(ctx context.Context, limit, offset int) ([]*domain.Part, error) {
	query := `SELECT id, name, price FROM inventory ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*domain.Part
	for rows.Next() {
		part := &domain.Part{}
		if err := rows.Scan(&part.ID, &part.Name, &part.Price); err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *PartRepository) UpdatePart(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	query := `UPDATE inventory
		SET name = $1, price = $2
		WHERE id = $3
		RETURNING id, name, price`

	err := r.db.QueryRowContext(ctx, query, part.Name, part.Price, part.ID).Scan(
		&part.ID,
		&part.Name,
		&part.Price,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating part: %w", err)
	}
	return part, nil
}

// DeletePart removes the inventory row and any ticket association rows
// pointing at it.
func (r *PartRepository) DeletePart(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM service_parts WHERE part_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPartNotFound
	}

	return tx.Commit()
}
