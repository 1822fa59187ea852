package service

import (
	"context"
	"errors"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/logger"
	"rakshak-backend/internal/repository"
)

type volunteerService struct {
	appRepo  repository.VolunteerApplicationRepository
	userRepo repository.UserRepository
	emailSvc EmailService
}

func NewVolunteerService(
	appRepo repository.VolunteerApplicationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) VolunteerService {
	return &volunteerService{
		appRepo:  appRepo,
		userRepo: userRepo,
		emailSvc: emailSvc,
	}
}

func (s *volunteerService) Apply(ctx context.Context, app *domain.VolunteerApplication) error {
	if _, err := s.userRepo.GetByID(ctx, app.UserID); err != nil {
		return asNotFound(err, "user", app.UserID)
	}
	app.Status = domain.ApplicationStatusPending
	return s.appRepo.Create(ctx, app)
}

func (s *volunteerService) GetApplication(ctx context.Context, id int32) (*domain.VolunteerApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "volunteer application", id)
	}
	return app, nil
}

func (s *volunteerService) ListApplications(ctx context.Context) ([]domain.VolunteerApplication, error) {
	return s.appRepo.List(ctx)
}

func (s *volunteerService) UpdateApplication(ctx context.Context, id int32, app *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	existing, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "volunteer application", id)
	}
	// Only the description is editable here; decisions go through
	// ApproveApplication and RejectApplication.
	existing.Description = app.Description
	if err := s.appRepo.Update(ctx, existing); err != nil {
		return nil, asNotFound(err, "volunteer application", id)
	}
	return existing, nil
}

func (s *volunteerService) DeleteApplication(ctx context.Context, id int32) error {
	return asNotFound(s.appRepo.Delete(ctx, id), "volunteer application", id)
}

// ApproveApplication decides the application and promotes the applicant to
// the Volunteer role. Both writes happen in one transaction; a decided
// application is never re-opened.
func (s *volunteerService) ApproveApplication(ctx context.Context, id int32) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "volunteer application", id)
	}

	err = s.appRepo.Approve(ctx, id)
	if errors.Is(err, repository.ErrStaleState) {
		return domain.Conflict("volunteer application %d has already been decided", id)
	}
	if err != nil {
		return asNotFound(err, "volunteer application", id)
	}

	logger.Info("volunteer application approved", "application_id", id, "user_id", app.UserID)
	s.notifyDecision(ctx, app.UserID, "approved")
	return nil
}

// RejectApplication declines the application; the user's role is untouched.
func (s *volunteerService) RejectApplication(ctx context.Context, id int32) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "volunteer application", id)
	}

	err = s.appRepo.Reject(ctx, id)
	if errors.Is(err, repository.ErrStaleState) {
		return domain.Conflict("volunteer application %d has already been decided", id)
	}
	if err != nil {
		return asNotFound(err, "volunteer application", id)
	}

	s.notifyDecision(ctx, app.UserID, "rejected")
	return nil
}

func (s *volunteerService) notifyDecision(ctx context.Context, userID int32, decision string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn("skipping application decision email, user lookup failed", "user_id", userID, "error", err)
		return
	}
	if err := s.emailSvc.SendApplicationDecision(ctx, user.Email, user.Name, decision); err != nil {
		logger.Warn("failed to send application decision email", "user_id", userID, "error", err)
	}
}
