package repository

import (
	"context"
	"errors"
	"time"

	"rakshak-backend/internal/domain"
)

// ErrNoRows is returned by implementations when a lookup matches nothing.
// Services translate it into a domain.NotFound error.
var ErrNoRows = errors.New("record not found")

// ErrStaleState is returned when a compare-and-swap update finds the record
// no longer in the expected state.
var ErrStaleState = errors.New("record not in expected state")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	Delete(ctx context.Context, id int32) error
}

type DisasterRepository interface {
	Create(ctx context.Context, d *domain.Disaster) error
	GetByID(ctx context.Context, id int32) (*domain.Disaster, error)
	List(ctx context.Context) ([]domain.Disaster, error)
	ListByType(ctx context.Context, t domain.DisasterType) ([]domain.Disaster, error)
	ListBySeverity(ctx context.Context, s domain.DisasterSeverity) ([]domain.Disaster, error)
	ListByStatus(ctx context.Context, s domain.DisasterStatus) ([]domain.Disaster, error)
	Update(ctx context.Context, d *domain.Disaster) error
	Delete(ctx context.Context, id int32) error
}

type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id int32) (*domain.Resource, error)
	List(ctx context.Context) ([]domain.Resource, error)
	// Replenish atomically adds amount to available_quantity.
	Replenish(ctx context.Context, id int32, amount int32) error
	Delete(ctx context.Context, id int32) error
}

type ResourceRequestRepository interface {
	Create(ctx context.Context, req *domain.ResourceRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ResourceRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.ResourceRequest, error)
	List(ctx context.Context) ([]domain.ResourceRequest, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ResourceRequestStatus) error
	// Allocate runs the accept-and-allocate transition as one transaction:
	// the resource row is locked, the quantity check and decrement happen
	// under the lock, and the request moves PENDING -> ALLOCATED. When the
	// available quantity is insufficient it returns (false, nil) and leaves
	// every record untouched.
	Allocate(ctx context.Context, id int32) (bool, error)
}

type TaskRequestRepository interface {
	Create(ctx context.Context, req *domain.TaskRequest) error
	GetByID(ctx context.Context, id int32) (*domain.TaskRequest, error)
	List(ctx context.Context) ([]domain.TaskRequest, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.TaskRequest, error)
	ListByStatus(ctx context.Context, status domain.TaskRequestStatus) ([]domain.TaskRequest, error)
	// Approve flips a PENDING request to APPROVED and inserts its Task in
	// the same transaction. Returns ErrStaleState when the request was
	// already decided, preserving the one-task-per-request invariant.
	Approve(ctx context.Context, id int32, photo string, deadline time.Time) (*domain.Task, error)
	Reject(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
}

type TaskRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Task, error)
	ListAvailable(ctx context.Context) ([]domain.Task, error)
	ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Task, error)
	// Assign sets the volunteer and moves the task to IN_PROGRESS, guarded
	// by a conditional update on (volunteer IS NULL AND status = PENDING).
	Assign(ctx context.Context, id, volunteerID int32) error
	UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error
	UpdateVolunteerRemarks(ctx context.Context, id int32, remarks string) error
	UpdateAdminRemarks(ctx context.Context, id int32, remarks string) error
}

type VolunteerApplicationRepository interface {
	Create(ctx context.Context, app *domain.VolunteerApplication) error
	GetByID(ctx context.Context, id int32) (*domain.VolunteerApplication, error)
	List(ctx context.Context) ([]domain.VolunteerApplication, error)
	Update(ctx context.Context, app *domain.VolunteerApplication) error
	// Approve marks the application APPROVED and promotes the user's role
	// to Volunteer in one transaction, so the application can never end up
	// approved with the role unchanged.
	Approve(ctx context.Context, id int32) error
	Reject(ctx context.Context, id int32) error
	Delete(ctx context.Context, id int32) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id int32) (*domain.Notification, error)
	// ListActiveForRole returns active notifications targeted at the role
	// whose scheduled time is absent or has passed.
	ListActiveForRole(ctx context.Context, role string, now time.Time) ([]domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
	Deactivate(ctx context.Context, id int32) error
	DeactivateExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type PasswordResetTokenRepository interface {
	Create(ctx context.Context, t *domain.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
