package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type taskRequestRepository struct {
	db *sql.DB
}

func NewTaskRequestRepository(db *sql.DB) repository.TaskRequestRepository {
	return &taskRequestRepository{db: db}
}

const taskRequestColumns = `id, user_id, request_title, request_description, location, photo, status, created_at, updated_at`

func (r *taskRequestRepository) Create(ctx context.Context, req *domain.TaskRequest) error {
	query := `INSERT INTO task_requests (user_id, request_title, request_description, location, photo, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	req.CreatedAt = time.Now()
	return r.db.QueryRowContext(ctx, query, req.UserID, req.Title, req.Description, req.Location, req.Photo, req.Status, req.CreatedAt).Scan(&req.ID)
}

func (r *taskRequestRepository) GetByID(ctx context.Context, id int32) (*domain.TaskRequest, error) {
	req := &domain.TaskRequest{}
	query := `SELECT ` + taskRequestColumns + ` FROM task_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.UserID, &req.Title, &req.Description, &req.Location, &req.Photo, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *taskRequestRepository) List(ctx context.Context) ([]domain.TaskRequest, error) {
	return r.list(ctx, `SELECT `+taskRequestColumns+` FROM task_requests ORDER BY created_at DESC`)
}

func (r *taskRequestRepository) ListByUser(ctx context.Context, userID int32) ([]domain.TaskRequest, error) {
	return r.list(ctx, `SELECT `+taskRequestColumns+` FROM task_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *taskRequestRepository) ListByStatus(ctx context.Context, status domain.TaskRequestStatus) ([]domain.TaskRequest, error) {
	return r.list(ctx, `SELECT `+taskRequestColumns+` FROM task_requests WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *taskRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.TaskRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.TaskRequest
	for rows.Next() {
		var req domain.TaskRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Title, &req.Description, &req.Location, &req.Photo, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Approve decides the request and creates its task in one transaction. The
// conditional status update is the guard that makes a second decision on the
// same request fail instead of producing a second task.
func (r *taskRequestRepository) Approve(ctx context.Context, id int32, photo string, deadline time.Time) (*domain.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE task_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		domain.TaskRequestStatusApproved, now, id, domain.TaskRequestStatusPending)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Distinguish a missing request from an already-decided one.
		var status string
		err := tx.QueryRowContext(ctx, `SELECT status FROM task_requests WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNoRows
		}
		if err != nil {
			return nil, err
		}
		return nil, repository.ErrStaleState
	}

	task := &domain.Task{
		TaskRequestID: id,
		Photo:         photo,
		Status:        domain.TaskStatusPending,
		CreatedAt:     now,
		Deadline:      &deadline,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO tasks (request_id, photo, status, created_at, deadline) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		task.TaskRequestID, task.Photo, task.Status, task.CreatedAt, task.Deadline).Scan(&task.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRequestRepository) Reject(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE task_requests SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		domain.TaskRequestStatusRejected, time.Now(), id, domain.TaskRequestStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var status string
		err := r.db.QueryRowContext(ctx, `SELECT status FROM task_requests WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNoRows
		}
		if err != nil {
			return err
		}
		return repository.ErrStaleState
	}
	return nil
}

func (r *taskRequestRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM task_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
