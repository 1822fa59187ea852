package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/logger"
	"rakshak-backend/internal/repository"
)

// taskDeadline is how long a volunteer has to finish a task once its request
// is approved.
const taskDeadline = 7 * 24 * time.Hour

// placeholderPhoto is attached to every task until a real photo is uploaded.
const placeholderPhoto = "default_path.jpg"

type taskService struct {
	taskRepo    repository.TaskRepository
	requestRepo repository.TaskRequestRepository
	userRepo    repository.UserRepository
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	requestRepo repository.TaskRequestRepository,
	userRepo repository.UserRepository,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

func (s *taskService) CreateTaskRequest(ctx context.Context, req *domain.TaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return domain.Invalid("task request title is required")
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return asNotFound(err, "user", req.UserID)
	}
	req.Status = domain.TaskRequestStatusPending
	return s.requestRepo.Create(ctx, req)
}

func (s *taskService) ListTaskRequests(ctx context.Context) ([]domain.TaskRequest, error) {
	return s.requestRepo.List(ctx)
}

func (s *taskService) ListTaskRequestsByUser(ctx context.Context, userID int32) ([]domain.TaskRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, asNotFound(err, "user", userID)
	}
	return s.requestRepo.ListByUser(ctx, userID)
}

func (s *taskService) ListTaskRequestsByStatus(ctx context.Context, status domain.TaskRequestStatus) ([]domain.TaskRequest, error) {
	return s.requestRepo.ListByStatus(ctx, status)
}

// ApproveTaskRequest decides a pending request and derives its task. Exactly
// one task can ever come out of a request: a second decision attempt fails
// with Conflict.
func (s *taskService) ApproveTaskRequest(ctx context.Context, requestID int32) (*domain.Task, error) {
	task, err := s.requestRepo.Approve(ctx, requestID, placeholderPhoto, time.Now().Add(taskDeadline))
	if errors.Is(err, repository.ErrStaleState) {
		return nil, domain.Conflict("task request %d has already been decided", requestID)
	}
	if err != nil {
		return nil, asNotFound(err, "task request", requestID)
	}
	logger.Info("task request approved", "request_id", requestID, "task_id", task.ID)
	return task, nil
}

func (s *taskService) RejectTaskRequest(ctx context.Context, requestID int32) error {
	err := s.requestRepo.Reject(ctx, requestID)
	if errors.Is(err, repository.ErrStaleState) {
		return domain.Conflict("task request %d has already been decided", requestID)
	}
	return asNotFound(err, "task request", requestID)
}

func (s *taskService) DeleteTaskRequest(ctx context.Context, requestID int32) error {
	return asNotFound(s.requestRepo.Delete(ctx, requestID), "task request", requestID)
}

func (s *taskService) ListAvailableTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepo.ListAvailable(ctx)
}

func (s *taskService) ListTasksByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Task, error) {
	if _, err := s.userRepo.GetByID(ctx, volunteerID); err != nil {
		return nil, asNotFound(err, "volunteer", volunteerID)
	}
	return s.taskRepo.ListByVolunteer(ctx, volunteerID)
}

// AcceptTask assigns a task to a volunteer. The task must be PENDING and
// unassigned, and the acting user must hold the volunteer role.
func (s *taskService) AcceptTask(ctx context.Context, taskID, volunteerID int32) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, asNotFound(err, "task", taskID)
	}
	if task.VolunteerID != nil {
		return nil, domain.Conflict("task is already assigned to another volunteer")
	}
	if task.Status != domain.TaskStatusPending {
		return nil, domain.Conflict("task is not in a state that can be accepted, current status: %s", task.Status)
	}

	volunteer, err := s.userRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, asNotFound(err, "volunteer", volunteerID)
	}
	if !volunteer.IsVolunteer() {
		return nil, domain.Forbidden("user is not authorized to accept tasks, current role: %s", volunteer.Role)
	}

	// The guard above is re-checked inside Assign so a concurrent accept
	// loses cleanly instead of double-assigning.
	err = s.taskRepo.Assign(ctx, taskID, volunteerID)
	if errors.Is(err, repository.ErrStaleState) {
		return nil, domain.Conflict("task is already assigned to another volunteer")
	}
	if err != nil {
		return nil, err
	}

	task.VolunteerID = &volunteerID
	task.Status = domain.TaskStatusInProgress
	logger.Info("task accepted", "task_id", taskID, "volunteer_id", volunteerID)
	return task, nil
}

// UpdateTaskStatus overwrites the status without a transition table. The
// source system allowed arbitrary jumps (COMPLETED back to PENDING included)
// and admin tooling depends on that flexibility.
func (s *taskService) UpdateTaskStatus(ctx context.Context, taskID int32, status domain.TaskStatus) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, asNotFound(err, "task", taskID)
	}
	if err := s.taskRepo.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, asNotFound(err, "task", taskID)
	}
	task.Status = status
	return task, nil
}

func (s *taskService) AddVolunteerRemarks(ctx context.Context, taskID int32, remarks string) (*domain.Task, error) {
	if strings.TrimSpace(remarks) == "" {
		return nil, domain.Invalid("remarks cannot be empty")
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, asNotFound(err, "task", taskID)
	}
	if task.VolunteerID == nil {
		return nil, domain.Conflict("cannot add volunteer remarks, task is not assigned to a volunteer")
	}

	task.VolunteerRemarks = domain.AppendRemark(task.VolunteerRemarks, remarks, time.Now())
	if err := s.taskRepo.UpdateVolunteerRemarks(ctx, taskID, task.VolunteerRemarks); err != nil {
		return nil, asNotFound(err, "task", taskID)
	}
	return task, nil
}

func (s *taskService) AddAdminRemarks(ctx context.Context, taskID int32, remarks string) (*domain.Task, error) {
	if strings.TrimSpace(remarks) == "" {
		return nil, domain.Invalid("remarks cannot be empty")
	}
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, asNotFound(err, "task", taskID)
	}

	task.AdminRemarks = domain.AppendRemark(task.AdminRemarks, remarks, time.Now())
	if err := s.taskRepo.UpdateAdminRemarks(ctx, taskID, task.AdminRemarks); err != nil {
		return nil, asNotFound(err, "task", taskID)
	}
	return task, nil
}

func (s *taskService) GetTaskRemarks(ctx context.Context, taskID int32) (string, string, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return "", "", asNotFound(err, "task", taskID)
	}
	return task.VolunteerRemarks, task.AdminRemarks, nil
}
