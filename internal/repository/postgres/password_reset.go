package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type passwordResetTokenRepository struct {
	db *sql.DB
}

func NewPasswordResetTokenRepository(db *sql.DB) repository.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{db: db}
}

func (r *passwordResetTokenRepository) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	query := `INSERT INTO password_reset_tokens (token, user_id, expiry_date) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, t.Token, t.UserID, t.ExpiryDate)
	return err
}

func (r *passwordResetTokenRepository) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	t := &domain.PasswordResetToken{}
	query := `SELECT token, user_id, expiry_date FROM password_reset_tokens WHERE token = $1`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&t.Token, &t.UserID, &t.ExpiryDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *passwordResetTokenRepository) Delete(ctx context.Context, token string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE token = $1`, token)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *passwordResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_reset_tokens WHERE expiry_date < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
