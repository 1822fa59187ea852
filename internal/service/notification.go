package service

import (
	"context"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Create(ctx context.Context, n *domain.Notification) error {
	if n.Title == "" || n.Message == "" {
		return domain.Invalid("notification title and message are required")
	}
	if n.TargetRole == "" {
		n.TargetRole = "all"
	}
	return s.repo.Create(ctx, n)
}

func (s *notificationService) ListForRole(ctx context.Context, role string) ([]domain.Notification, error) {
	return s.repo.ListActiveForRole(ctx, role, time.Now())
}

func (s *notificationService) Update(ctx context.Context, id int32, n *domain.Notification) (*domain.Notification, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "notification", id)
	}
	existing.Title = n.Title
	existing.Message = n.Message
	existing.Type = n.Type
	existing.TargetRole = n.TargetRole
	existing.ScheduledFor = n.ScheduledFor
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, asNotFound(err, "notification", id)
	}
	return existing, nil
}

// Delete is soft: the row is kept with active=false.
func (s *notificationService) Delete(ctx context.Context, id int32) error {
	return asNotFound(s.repo.Deactivate(ctx, id), "notification", id)
}
