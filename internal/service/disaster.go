package service

import (
	"context"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type disasterService struct {
	repo repository.DisasterRepository
}

func NewDisasterService(repo repository.DisasterRepository) DisasterService {
	return &disasterService{repo: repo}
}

func (s *disasterService) Create(ctx context.Context, d *domain.Disaster) error {
	if _, ok := domain.ParseDisasterType(string(d.Type)); !ok {
		return domain.Invalid("unknown disaster type: %s", d.Type)
	}
	if _, ok := domain.ParseDisasterSeverity(string(d.Severity)); !ok {
		return domain.Invalid("unknown severity: %s", d.Severity)
	}
	if d.Status == "" {
		d.Status = domain.DisasterStatusActive
	}
	if _, ok := domain.ParseDisasterStatus(string(d.Status)); !ok {
		return domain.Invalid("unknown status: %s", d.Status)
	}
	return s.repo.Create(ctx, d)
}

func (s *disasterService) Get(ctx context.Context, id int32) (*domain.Disaster, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "disaster", id)
	}
	return d, nil
}

func (s *disasterService) List(ctx context.Context) ([]domain.Disaster, error) {
	return s.repo.List(ctx)
}

func (s *disasterService) ListByType(ctx context.Context, t domain.DisasterType) ([]domain.Disaster, error) {
	return s.repo.ListByType(ctx, t)
}

func (s *disasterService) ListBySeverity(ctx context.Context, sev domain.DisasterSeverity) ([]domain.Disaster, error) {
	return s.repo.ListBySeverity(ctx, sev)
}

func (s *disasterService) ListByStatus(ctx context.Context, st domain.DisasterStatus) ([]domain.Disaster, error) {
	return s.repo.ListByStatus(ctx, st)
}

// Update overwrites the mutable fields; reportedAt stays as it was at
// creation.
func (s *disasterService) Update(ctx context.Context, id int32, d *domain.Disaster) (*domain.Disaster, error) {
	if _, ok := domain.ParseDisasterType(string(d.Type)); !ok {
		return nil, domain.Invalid("unknown disaster type: %s", d.Type)
	}
	if _, ok := domain.ParseDisasterSeverity(string(d.Severity)); !ok {
		return nil, domain.Invalid("unknown severity: %s", d.Severity)
	}
	if _, ok := domain.ParseDisasterStatus(string(d.Status)); !ok {
		return nil, domain.Invalid("unknown status: %s", d.Status)
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "disaster", id)
	}
	existing.Name = d.Name
	existing.Description = d.Description
	existing.Location = d.Location
	existing.Type = d.Type
	existing.Severity = d.Severity
	existing.Status = d.Status
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, asNotFound(err, "disaster", id)
	}
	return existing, nil
}

func (s *disasterService) Delete(ctx context.Context, id int32) error {
	return asNotFound(s.repo.Delete(ctx, id), "disaster", id)
}
