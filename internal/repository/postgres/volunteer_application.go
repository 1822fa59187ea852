package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type volunteerApplicationRepository struct {
	db *sql.DB
}

func NewVolunteerApplicationRepository(db *sql.DB) repository.VolunteerApplicationRepository {
	return &volunteerApplicationRepository{db: db}
}

const applicationColumns = `id, user_id, application_date, status, description`

func (r *volunteerApplicationRepository) Create(ctx context.Context, app *domain.VolunteerApplication) error {
	query := `INSERT INTO volunteer_applications (user_id, application_date, status, description)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	app.ApplicationDate = time.Now()
	return r.db.QueryRowContext(ctx, query, app.UserID, app.ApplicationDate, app.Status, app.Description).Scan(&app.ID)
}

func (r *volunteerApplicationRepository) GetByID(ctx context.Context, id int32) (*domain.VolunteerApplication, error) {
	app := &domain.VolunteerApplication{}
	query := `SELECT ` + applicationColumns + ` FROM volunteer_applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&app.ID, &app.UserID, &app.ApplicationDate, &app.Status, &app.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *volunteerApplicationRepository) List(ctx context.Context) ([]domain.VolunteerApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM volunteer_applications ORDER BY application_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.VolunteerApplication
	for rows.Next() {
		var app domain.VolunteerApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.ApplicationDate, &app.Status, &app.Description); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *volunteerApplicationRepository) Update(ctx context.Context, app *domain.VolunteerApplication) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE volunteer_applications SET description = $1, status = $2 WHERE id = $3`,
		app.Description, app.Status, app.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Approve decides the application and promotes the user in one transaction.
// The conditional update keeps decided applications from being re-opened.
func (r *volunteerApplicationRepository) Approve(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE volunteer_applications SET status = $1 WHERE id = $2 AND status = $3`,
		domain.ApplicationStatusApproved, id, domain.ApplicationStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var status string
		err := tx.QueryRowContext(ctx, `SELECT status FROM volunteer_applications WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNoRows
		}
		if err != nil {
			return err
		}
		return repository.ErrStaleState
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE users SET role = $1 WHERE id = (SELECT user_id FROM volunteer_applications WHERE id = $2)`,
		domain.UserRoleVolunteer, id)
	if err != nil {
		return err
	}
	n, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// User row vanished; abort so the application does not stay
		// approved without the role change.
		return repository.ErrNoRows
	}

	return tx.Commit()
}

func (r *volunteerApplicationRepository) Reject(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE volunteer_applications SET status = $1 WHERE id = $2 AND status = $3`,
		domain.ApplicationStatusRejected, id, domain.ApplicationStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var status string
		err := r.db.QueryRowContext(ctx, `SELECT status FROM volunteer_applications WHERE id = $1`, id).Scan(&status)
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

func (r *volunteerApplicationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM volunteer_applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
