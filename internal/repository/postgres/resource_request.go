package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type resourceRequestRepository struct {
	db *sql.DB
}

func NewResourceRequestRepository(db *sql.DB) repository.ResourceRequestRepository {
	return &resourceRequestRepository{db: db}
}

const resourceRequestColumns = `id, user_id, resource_id, location, status, requested_quantity, request_date`

func (r *resourceRequestRepository) Create(ctx context.Context, req *domain.ResourceRequest) error {
	query := `INSERT INTO resource_requests (user_id, resource_id, location, status, requested_quantity, request_date)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	req.RequestDate = time.Now()
	return r.db.QueryRowContext(ctx, query, req.UserID, req.ResourceID, req.Location, req.Status, req.RequestedQuantity, req.RequestDate).Scan(&req.ID)
}

func (r *resourceRequestRepository) GetByID(ctx context.Context, id int32) (*domain.ResourceRequest, error) {
	req := &domain.ResourceRequest{}
	query := `SELECT ` + resourceRequestColumns + ` FROM resource_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.UserID, &req.ResourceID, &req.Location, &req.Status, &req.RequestedQuantity, &req.RequestDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *resourceRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.ResourceRequest, error) {
	return r.list(ctx, `SELECT `+resourceRequestColumns+` FROM resource_requests WHERE user_id = $1 ORDER BY request_date DESC`, userID)
}

func (r *resourceRequestRepository) List(ctx context.Context) ([]domain.ResourceRequest, error) {
	return r.list(ctx, `SELECT `+resourceRequestColumns+` FROM resource_requests ORDER BY request_date DESC`)
}

func (r *resourceRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.ResourceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ResourceRequest
	for rows.Next() {
		var req domain.ResourceRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.ResourceID, &req.Location, &req.Status, &req.RequestedQuantity, &req.RequestDate); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *resourceRequestRepository) UpdateStatus(ctx context.Context, id int32, status domain.ResourceRequestStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE resource_requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Allocate performs the accept-and-allocate transition atomically. The
// resource row is locked with FOR UPDATE so concurrent allocations against
// the same resource serialize; both pass the quantity check only if enough
// remains for each in turn, which keeps available_quantity from going
// negative under contention.
func (r *resourceRequestRepository) Allocate(ctx context.Context, id int32) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var resourceID, requested, available int32
	err = tx.QueryRowContext(ctx,
		`SELECT resource_id, requested_quantity FROM resource_requests WHERE id = $1`, id).
		Scan(&resourceID, &requested)
	if errors.Is(err, sql.ErrNoRows) {
		return false, repository.ErrNoRows
	}
	if err != nil {
		return false, err
	}

	err = tx.QueryRowContext(ctx,
		`SELECT available_quantity FROM resources WHERE id = $1 FOR UPDATE`, resourceID).
		Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("resource %d referenced by request %d: %w", resourceID, id, repository.ErrNoRows)
	}
	if err != nil {
		return false, err
	}

	if available < requested {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE resources SET available_quantity = available_quantity - $1 WHERE id = $2`, requested, resourceID); err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE resource_requests SET status = $1 WHERE id = $2`, domain.ResourceRequestStatusAllocated, id); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
