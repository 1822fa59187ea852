package service

import (
	"context"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/logger"
	"rakshak-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL is how long a password reset token stays redeemable.
const resetTokenTTL = 15 * time.Minute

type passwordResetService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetTokenRepository
	emailSvc  EmailService
}

func NewPasswordResetService(
	userRepo repository.UserRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	emailSvc EmailService,
) PasswordResetService {
	return &passwordResetService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		emailSvc:  emailSvc,
	}
}

func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNoRows) {
		return domain.NotFound("user not found with email: %s", email)
	}
	if err != nil {
		return err
	}

	token := &domain.PasswordResetToken{
		Token:      uuid.NewString(),
		UserID:     user.ID,
		ExpiryDate: time.Now().Add(resetTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	if err := s.emailSvc.SendPasswordReset(ctx, user.Email, user.Name, token.Token); err != nil {
		return err
	}
	logger.Info("password reset token issued", "user_id", user.ID)
	return nil
}

// ResetPassword redeems a token. The token is single-use: it is deleted once
// the new password is stored.
func (s *passwordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.Invalid("new password is required")
	}

	reset, err := s.tokenRepo.GetByToken(ctx, token)
	if errors.Is(err, repository.ErrNoRows) {
		return domain.Invalid("invalid token")
	}
	if err != nil {
		return err
	}
	if reset.Expired(time.Now()) {
		return domain.Invalid("token expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return asNotFound(err, "user", reset.UserID)
	}

	if err := s.tokenRepo.Delete(ctx, token); err != nil {
		// The password is already changed; a leftover token row only
		// shortens its own life to the expiry sweep.
		logger.Warn("failed to delete redeemed reset token", "error", err)
	}
	logger.Info("password reset", "user_id", reset.UserID)
	return nil
}
