package service_test

import (
	"context"
	"time"

	"rakshak-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResourceRepo
type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) Create(ctx context.Context, r *domain.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockResourceRepo) GetByID(ctx context.Context, id int32) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) Replenish(ctx context.Context, id int32, amount int32) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}
func (m *MockResourceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResourceRequestRepo
type MockResourceRequestRepo struct {
	mock.Mock
}

func (m *MockResourceRequestRepo) Create(ctx context.Context, req *domain.ResourceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockResourceRequestRepo) GetByID(ctx context.Context, id int32) (*domain.ResourceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceRequest), args.Error(1)
}
func (m *MockResourceRequestRepo) ListByUser(ctx context.Context, userID int32) ([]domain.ResourceRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.ResourceRequest), args.Error(1)
}
func (m *MockResourceRequestRepo) List(ctx context.Context) ([]domain.ResourceRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ResourceRequest), args.Error(1)
}
func (m *MockResourceRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.ResourceRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockResourceRequestRepo) Allocate(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTaskRequestRepo
type MockTaskRequestRepo struct {
	mock.Mock
}

func (m *MockTaskRequestRepo) Create(ctx context.Context, req *domain.TaskRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockTaskRequestRepo) GetByID(ctx context.Context, id int32) (*domain.TaskRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskRequest), args.Error(1)
}
func (m *MockTaskRequestRepo) List(ctx context.Context) ([]domain.TaskRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TaskRequest), args.Error(1)
}
func (m *MockTaskRequestRepo) ListByUser(ctx context.Context, userID int32) ([]domain.TaskRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.TaskRequest), args.Error(1)
}
func (m *MockTaskRequestRepo) ListByStatus(ctx context.Context, status domain.TaskRequestStatus) ([]domain.TaskRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.TaskRequest), args.Error(1)
}
func (m *MockTaskRequestRepo) Approve(ctx context.Context, id int32, photo string, deadline time.Time) (*domain.Task, error) {
	args := m.Called(ctx, id, photo, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRequestRepo) Reject(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTaskRequestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRepo) ListAvailable(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Task, error) {
	args := m.Called(ctx, volunteerID)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Assign(ctx context.Context, id, volunteerID int32) error {
	args := m.Called(ctx, id, volunteerID)
	return args.Error(0)
}
func (m *MockTaskRepo) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTaskRepo) UpdateVolunteerRemarks(ctx context.Context, id int32, remarks string) error {
	args := m.Called(ctx, id, remarks)
	return args.Error(0)
}
func (m *MockTaskRepo) UpdateAdminRemarks(ctx context.Context, id int32, remarks string) error {
	args := m.Called(ctx, id, remarks)
	return args.Error(0)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.VolunteerApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.VolunteerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VolunteerApplication), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.VolunteerApplication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VolunteerApplication), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.VolunteerApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) Approve(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApplicationRepo) Reject(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Create(ctx context.Context, t *domain.PasswordResetToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTokenRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PasswordResetToken), args.Error(1)
}
func (m *MockTokenRepo) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockTokenRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPasswordReset(ctx context.Context, email, name, token string) error {
	args := m.Called(ctx, email, name, token)
	return args.Error(0)
}
func (m *MockEmailService) SendResourceRequestDecision(ctx context.Context, email, name, resourceName, decision string) error {
	args := m.Called(ctx, email, name, resourceName, decision)
	return args.Error(0)
}
func (m *MockEmailService) SendApplicationDecision(ctx context.Context, email, name, decision string) error {
	args := m.Called(ctx, email, name, decision)
	return args.Error(0)
}
