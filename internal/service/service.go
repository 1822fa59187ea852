package service

import (
	"context"

	"rakshak-backend/internal/domain"
)

// LoginResult carries what the login endpoint reports back to the client.
type LoginResult struct {
	UserID int32
	Name   string
	Role   domain.UserRole
	Status domain.UserStatus
	Token  string
}

type AccountService interface {
	Register(ctx context.Context, user *domain.User, password string) error
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int32, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int32) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type AllocationService interface {
	CreateRequest(ctx context.Context, userID, resourceID int32, location string, quantity int32) (*domain.ResourceRequest, error)
	AcceptAndAllocate(ctx context.Context, requestID int32) (*domain.AllocationResult, error)
	RejectRequest(ctx context.Context, requestID int32) error
	ListRequestsByUser(ctx context.Context, userID int32) ([]domain.ResourceRequest, error)
	ListRequests(ctx context.Context) ([]domain.ResourceRequest, error)
	Replenish(ctx context.Context, resourceID int32, amount int32) error
	AddResource(ctx context.Context, res *domain.Resource) error
	ListResources(ctx context.Context) ([]domain.Resource, error)
	DeleteResource(ctx context.Context, resourceID int32) error
}

type TaskService interface {
	CreateTaskRequest(ctx context.Context, req *domain.TaskRequest) error
	ListTaskRequests(ctx context.Context) ([]domain.TaskRequest, error)
	ListTaskRequestsByUser(ctx context.Context, userID int32) ([]domain.TaskRequest, error)
	ListTaskRequestsByStatus(ctx context.Context, status domain.TaskRequestStatus) ([]domain.TaskRequest, error)
	ApproveTaskRequest(ctx context.Context, requestID int32) (*domain.Task, error)
	RejectTaskRequest(ctx context.Context, requestID int32) error
	DeleteTaskRequest(ctx context.Context, requestID int32) error

	ListAvailableTasks(ctx context.Context) ([]domain.Task, error)
	ListTasksByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Task, error)
	AcceptTask(ctx context.Context, taskID, volunteerID int32) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int32, status domain.TaskStatus) (*domain.Task, error)
	AddVolunteerRemarks(ctx context.Context, taskID int32, remarks string) (*domain.Task, error)
	AddAdminRemarks(ctx context.Context, taskID int32, remarks string) (*domain.Task, error)
	GetTaskRemarks(ctx context.Context, taskID int32) (volunteerRemarks, adminRemarks string, err error)
}

type VolunteerService interface {
	Apply(ctx context.Context, app *domain.VolunteerApplication) error
	GetApplication(ctx context.Context, id int32) (*domain.VolunteerApplication, error)
	ListApplications(ctx context.Context) ([]domain.VolunteerApplication, error)
	UpdateApplication(ctx context.Context, id int32, app *domain.VolunteerApplication) (*domain.VolunteerApplication, error)
	DeleteApplication(ctx context.Context, id int32) error
	ApproveApplication(ctx context.Context, id int32) error
	RejectApplication(ctx context.Context, id int32) error
}

type DisasterService interface {
	Create(ctx context.Context, d *domain.Disaster) error
	Get(ctx context.Context, id int32) (*domain.Disaster, error)
	List(ctx context.Context) ([]domain.Disaster, error)
	ListByType(ctx context.Context, t domain.DisasterType) ([]domain.Disaster, error)
	ListBySeverity(ctx context.Context, s domain.DisasterSeverity) ([]domain.Disaster, error)
	ListByStatus(ctx context.Context, s domain.DisasterStatus) ([]domain.Disaster, error)
	Update(ctx context.Context, id int32, d *domain.Disaster) (*domain.Disaster, error)
	Delete(ctx context.Context, id int32) error
}

type NotificationService interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListForRole(ctx context.Context, role string) ([]domain.Notification, error)
	Update(ctx context.Context, id int32, n *domain.Notification) (*domain.Notification, error)
	Delete(ctx context.Context, id int32) error
}

type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, email, name, token string) error
	SendResourceRequestDecision(ctx context.Context, email, name, resourceName, decision string) error
	SendApplicationDecision(ctx context.Context, email, name, decision string) error
}
