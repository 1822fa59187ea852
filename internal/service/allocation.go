package service

import (
	"context"
	"errors"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/logger"
	"rakshak-backend/internal/repository"
)

type allocationService struct {
	requestRepo  repository.ResourceRequestRepository
	resourceRepo repository.ResourceRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
}

func NewAllocationService(
	requestRepo repository.ResourceRequestRepository,
	resourceRepo repository.ResourceRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) AllocationService {
	return &allocationService{
		requestRepo:  requestRepo,
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
	}
}

// CreateRequest records a PENDING request. Quantity is not validated against
// availability here; the check happens at allocation time.
func (s *allocationService) CreateRequest(ctx context.Context, userID, resourceID int32, location string, quantity int32) (*domain.ResourceRequest, error) {
	if quantity <= 0 {
		return nil, domain.Invalid("requested quantity must be positive")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user", userID)
	}
	if _, err := s.resourceRepo.GetByID(ctx, resourceID); err != nil {
		return nil, asNotFound(err, "resource", resourceID)
	}

	req := &domain.ResourceRequest{
		UserID:            userID,
		ResourceID:        resourceID,
		Location:          location,
		Status:            domain.ResourceRequestStatusPending,
		RequestedQuantity: quantity,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	logger.Info("resource request created", "request_id", req.ID, "resource_id", resourceID, "quantity", quantity)
	return req, nil
}

// AcceptAndAllocate decides the request against the live resource balance.
// Insufficient quantity is a declined result, not an error, and mutates
// nothing.
func (s *allocationService) AcceptAndAllocate(ctx context.Context, requestID int32) (*domain.AllocationResult, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, asNotFound(err, "resource request", requestID)
	}

	allocated, err := s.requestRepo.Allocate(ctx, requestID)
	if err != nil {
		return nil, asNotFound(err, "resource request", requestID)
	}
	if !allocated {
		logger.Info("resource allocation declined", "request_id", requestID, "requested", req.RequestedQuantity)
		return &domain.AllocationResult{
			Allocated: false,
			Message:   "insufficient quantity",
		}, nil
	}

	logger.Info("resource request allocated", "request_id", requestID, "resource_id", req.ResourceID, "quantity", req.RequestedQuantity)
	s.notifyDecision(ctx, req, "allocated")
	return &domain.AllocationResult{
		Allocated: true,
		Message:   "resource request accepted and allocated",
	}, nil
}

func (s *allocationService) RejectRequest(ctx context.Context, requestID int32) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return asNotFound(err, "resource request", requestID)
	}
	if err := s.requestRepo.UpdateStatus(ctx, requestID, domain.ResourceRequestStatusRejected); err != nil {
		return asNotFound(err, "resource request", requestID)
	}
	s.notifyDecision(ctx, req, "rejected")
	return nil
}

// notifyDecision emails the requester; delivery failures are logged, never
// surfaced.
func (s *allocationService) notifyDecision(ctx context.Context, req *domain.ResourceRequest, decision string) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		logger.Warn("skipping decision email, requester lookup failed", "request_id", req.ID, "error", err)
		return
	}
	resourceName := ""
	if res, err := s.resourceRepo.GetByID(ctx, req.ResourceID); err == nil {
		resourceName = res.Name
	}
	if err := s.emailSvc.SendResourceRequestDecision(ctx, user.Email, user.Name, resourceName, decision); err != nil {
		logger.Warn("failed to send decision email", "request_id", req.ID, "error", err)
	}
}

func (s *allocationService) ListRequestsByUser(ctx context.Context, userID int32) ([]domain.ResourceRequest, error) {
	return s.requestRepo.ListByUser(ctx, userID)
}

func (s *allocationService) ListRequests(ctx context.Context) ([]domain.ResourceRequest, error) {
	return s.requestRepo.List(ctx)
}

// Replenish adds amount to the available quantity. The amount is not
// validated; a negative value shrinks the pool, matching the admin surface
// this replaces.
func (s *allocationService) Replenish(ctx context.Context, resourceID int32, amount int32) error {
	err := s.resourceRepo.Replenish(ctx, resourceID, amount)
	if errors.Is(err, repository.ErrNoRows) {
		return domain.NotFound("resource not found with id: %d", resourceID)
	}
	return err
}

func (s *allocationService) AddResource(ctx context.Context, res *domain.Resource) error {
	return s.resourceRepo.Create(ctx, res)
}

func (s *allocationService) ListResources(ctx context.Context) ([]domain.Resource, error) {
	return s.resourceRepo.List(ctx)
}

func (s *allocationService) DeleteResource(ctx context.Context, resourceID int32) error {
	return asNotFound(s.resourceRepo.Delete(ctx, resourceID), "resource", resourceID)
}
