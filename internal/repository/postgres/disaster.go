package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type disasterRepository struct {
	db *sql.DB
}

func NewDisasterRepository(db *sql.DB) repository.DisasterRepository {
	return &disasterRepository{db: db}
}

const disasterColumns = `id, name, description, location, disaster_type, severity, status, reported_at`

func (r *disasterRepository) Create(ctx context.Context, d *domain.Disaster) error {
	query := `INSERT INTO disasters (name, description, location, disaster_type, severity, status, reported_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	d.ReportedAt = time.Now()
	return r.db.QueryRowContext(ctx, query, d.Name, d.Description, d.Location, d.Type, d.Severity, d.Status, d.ReportedAt).Scan(&d.ID)
}

func (r *disasterRepository) GetByID(ctx context.Context, id int32) (*domain.Disaster, error) {
	d := &domain.Disaster{}
	query := `SELECT ` + disasterColumns + ` FROM disasters WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description, &d.Location, &d.Type, &d.Severity, &d.Status, &d.ReportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *disasterRepository) List(ctx context.Context) ([]domain.Disaster, error) {
	return r.list(ctx, `SELECT `+disasterColumns+` FROM disasters ORDER BY reported_at DESC`)
}

func (r *disasterRepository) ListByType(ctx context.Context, t domain.DisasterType) ([]domain.Disaster, error) {
	return r.list(ctx, `SELECT `+disasterColumns+` FROM disasters WHERE disaster_type = $1 ORDER BY reported_at DESC`, t)
}

func (r *disasterRepository) ListBySeverity(ctx context.Context, s domain.DisasterSeverity) ([]domain.Disaster, error) {
	return r.list(ctx, `SELECT `+disasterColumns+` FROM disasters WHERE severity = $1 ORDER BY reported_at DESC`, s)
}

func (r *disasterRepository) ListByStatus(ctx context.Context, s domain.DisasterStatus) ([]domain.Disaster, error) {
	return r.list(ctx, `SELECT `+disasterColumns+` FROM disasters WHERE status = $1 ORDER BY reported_at DESC`, s)
}

func (r *disasterRepository) list(ctx context.Context, query string, args ...any) ([]domain.Disaster, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disasters []domain.Disaster
	for rows.Next() {
		var d domain.Disaster
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Location, &d.Type, &d.Severity, &d.Status, &d.ReportedAt); err != nil {
			return nil, err
		}
		disasters = append(disasters, d)
	}
	return disasters, rows.Err()
}

// Update never touches reported_at.
func (r *disasterRepository) Update(ctx context.Context, d *domain.Disaster) error {
	query := `UPDATE disasters SET name=$1, description=$2, location=$3, disaster_type=$4, severity=$5, status=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, d.Name, d.Description, d.Location, d.Type, d.Severity, d.Status, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *disasterRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM disasters WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
