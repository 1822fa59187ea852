package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (name, type, available_quantity) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, res.Name, res.Type, res.AvailableQuantity).Scan(&res.ID)
}

func (r *resourceRepository) GetByID(ctx context.Context, id int32) (*domain.Resource, error) {
	res := &domain.Resource{}
	query := `SELECT id, name, type, available_quantity FROM resources WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.Name, &res.Type, &res.AvailableQuantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) List(ctx context.Context) ([]domain.Resource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, type, available_quantity FROM resources ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Type, &res.AvailableQuantity); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *resourceRepository) Replenish(ctx context.Context, id int32, amount int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE resources SET available_quantity = available_quantity + $1 WHERE id = $2`, amount, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete is unconditional: outstanding requests referencing the resource are
// not checked.
func (r *resourceRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
