package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

const notificationColumns = `id, title, message, type, target_role, scheduled_for, active, created_at`

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (title, message, type, target_role, scheduled_for, active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	n.CreatedAt = time.Now()
	n.Active = true
	return r.db.QueryRowContext(ctx, query, n.Title, n.Message, n.Type, n.TargetRole, n.ScheduledFor, n.Active, n.CreatedAt).Scan(&n.ID)
}

func (r *notificationRepository) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	n := &domain.Notification{}
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.TargetRole, &n.ScheduledFor, &n.Active, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *notificationRepository) ListActiveForRole(ctx context.Context, role string, now time.Time) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE active = true AND (target_role = $1 OR target_role = 'all')
	          AND (scheduled_for IS NULL OR scheduled_for <= $2)
	          ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, role, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.TargetRole, &n.ScheduledFor, &n.Active, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *notificationRepository) Update(ctx context.Context, n *domain.Notification) error {
	query := `UPDATE notifications SET title=$1, message=$2, type=$3, target_role=$4, scheduled_for=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, n.Title, n.Message, n.Type, n.TargetRole, n.ScheduledFor, n.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Deactivate is the soft delete.
func (r *notificationRepository) Deactivate(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET active = false WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *notificationRepository) DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET active = false WHERE active = true AND scheduled_for IS NOT NULL AND scheduled_for < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
