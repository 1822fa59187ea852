package service_test

import (
	"context"
	"testing"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
	"rakshak-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAllocationService_CreateRequest(t *testing.T) {
	requestRepo := new(MockResourceRequestRepo)
	resourceRepo := new(MockResourceRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)

	svc := service.NewAllocationService(requestRepo, resourceRepo, userRepo, emailSvc)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1}, nil)
		resourceRepo.On("GetByID", ctx, int32(2)).Return(&domain.Resource{ID: 2, Name: "Water"}, nil)
		requestRepo.On("Create", ctx, mock.AnythingOfType("*domain.ResourceRequest")).Return(nil)

		req, err := svc.CreateRequest(ctx, 1, 2, "Sector 4", 10)
		assert.NoError(t, err)
		assert.Equal(t, domain.ResourceRequestStatusPending, req.Status)
		assert.Equal(t, int32(10), req.RequestedQuantity)
	})

	t.Run("NonPositiveQuantity", func(t *testing.T) {
		req, err := svc.CreateRequest(ctx, 1, 2, "Sector 4", 0)
		assert.Nil(t, req)
		var derr *domain.Error
		assert.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindInvalid, derr.Kind)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		userRepo.ExpectedCalls = nil
		userRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNoRows)

		req, err := svc.CreateRequest(ctx, 99, 2, "Sector 4", 10)
		assert.Nil(t, req)
		var derr *domain.Error
		assert.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindNotFound, derr.Kind)
	})
}

func TestAllocationService_AcceptAndAllocate(t *testing.T) {
	ctx := context.Background()
	request := &domain.ResourceRequest{
		ID:                5,
		UserID:            1,
		ResourceID:        2,
		RequestedQuantity: 10,
		Status:            domain.ResourceRequestStatusPending,
	}

	t.Run("Allocated", func(t *testing.T) {
		requestRepo := new(MockResourceRequestRepo)
		resourceRepo := new(MockResourceRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAllocationService(requestRepo, resourceRepo, userRepo, emailSvc)

		requestRepo.On("GetByID", ctx, int32(5)).Return(request, nil)
		requestRepo.On("Allocate", ctx, int32(5)).Return(true, nil)
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "a@test.com", Name: "Asha"}, nil)
		resourceRepo.On("GetByID", ctx, int32(2)).Return(&domain.Resource{ID: 2, Name: "Water"}, nil)
		emailSvc.On("SendResourceRequestDecision", ctx, "a@test.com", "Asha", "Water", "allocated").Return(nil)

		res, err := svc.AcceptAndAllocate(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, res.Allocated)
		emailSvc.AssertExpectations(t)
	})

	t.Run("InsufficientQuantityDeclines", func(t *testing.T) {
		requestRepo := new(MockResourceRequestRepo)
		resourceRepo := new(MockResourceRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAllocationService(requestRepo, resourceRepo, userRepo, emailSvc)

		requestRepo.On("GetByID", ctx, int32(5)).Return(request, nil)
		requestRepo.On("Allocate", ctx, int32(5)).Return(false, nil)

		res, err := svc.AcceptAndAllocate(ctx, 5)
		assert.NoError(t, err)
		assert.False(t, res.Allocated)
		assert.Equal(t, "insufficient quantity", res.Message)
		// No resource mutation and no email on a decline.
		emailSvc.AssertNotCalled(t, "SendResourceRequestDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		requestRepo := new(MockResourceRequestRepo)
		svc := service.NewAllocationService(requestRepo, new(MockResourceRepo), new(MockUserRepo), new(MockEmailService))

		requestRepo.On("GetByID", ctx, int32(404)).Return(nil, repository.ErrNoRows)

		res, err := svc.AcceptAndAllocate(ctx, 404)
		assert.Nil(t, res)
		var derr *domain.Error
		assert.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindNotFound, derr.Kind)
	})
}

func TestAllocationService_RejectRequest(t *testing.T) {
	ctx := context.Background()
	requestRepo := new(MockResourceRequestRepo)
	resourceRepo := new(MockResourceRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewAllocationService(requestRepo, resourceRepo, userRepo, emailSvc)

	request := &domain.ResourceRequest{ID: 5, UserID: 1, ResourceID: 2}
	requestRepo.On("GetByID", ctx, int32(5)).Return(request, nil)
	requestRepo.On("UpdateStatus", ctx, int32(5), domain.ResourceRequestStatusRejected).Return(nil)
	userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "a@test.com", Name: "Asha"}, nil)
	resourceRepo.On("GetByID", ctx, int32(2)).Return(&domain.Resource{ID: 2, Name: "Water"}, nil)
	emailSvc.On("SendResourceRequestDecision", ctx, "a@test.com", "Asha", "Water", "rejected").Return(nil)

	err := svc.RejectRequest(ctx, 5)
	assert.NoError(t, err)
	requestRepo.AssertExpectations(t)
}

func TestAllocationService_Replenish(t *testing.T) {
	ctx := context.Background()
	resourceRepo := new(MockResourceRepo)
	svc := service.NewAllocationService(new(MockResourceRequestRepo), resourceRepo, new(MockUserRepo), new(MockEmailService))

	t.Run("Success", func(t *testing.T) {
		resourceRepo.On("Replenish", ctx, int32(2), int32(50)).Return(nil)
		assert.NoError(t, svc.Replenish(ctx, 2, 50))
	})

	t.Run("UnknownResource", func(t *testing.T) {
		resourceRepo.On("Replenish", ctx, int32(404), int32(50)).Return(repository.ErrNoRows)
		err := svc.Replenish(ctx, 404, 50)
		var derr *domain.Error
		assert.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindNotFound, derr.Kind)
	})
}
