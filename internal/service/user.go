package service

import (
	"context"
	"errors"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/logger"
	"rakshak-backend/internal/repository"
	"rakshak-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type accountService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAccountService(userRepo repository.UserRepository, tokens security.TokenManager) AccountService {
	return &accountService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *accountService) Register(ctx context.Context, user *domain.User, password string) error {
	if user.Email == "" || password == "" {
		return domain.Invalid("email and password are required")
	}
	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return domain.Conflict("email is already registered: %s", user.Email)
	} else if !errors.Is(err, repository.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}
	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return nil
}

func (s *accountService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user", id)
	}
	return user, nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *accountService) UpdateUser(ctx context.Context, id int32, user *domain.User) (*domain.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user", id)
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.PhoneNumber = user.PhoneNumber
	existing.Location = user.Location
	if user.Role != "" {
		existing.Role = user.Role
	}
	if user.Status != "" {
		existing.Status = user.Status
	}
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, asNotFound(err, "user", id)
	}
	return existing, nil
}

func (s *accountService) DeleteUser(ctx context.Context, id int32) error {
	return asNotFound(s.userRepo.Delete(ctx, id), "user", id)
}

// Login verifies credentials and returns the caller's identity plus an
// access token. Blocked accounts fail with Forbidden even on a correct
// password; bad credentials fail with Unauthorized.
func (s *accountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNoRows) {
		return nil, domain.Unauthorized("invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.Unauthorized("invalid credentials")
	}

	if user.Status != domain.UserStatusActive {
		return nil, domain.Forbidden("this user is blocked, please contact support")
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Status: user.Status,
		Token:  token,
	}, nil
}
