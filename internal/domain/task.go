package domain

import "time"

type TaskRequestStatus string

const (
	TaskRequestStatusPending  TaskRequestStatus = "PENDING"
	TaskRequestStatusApproved TaskRequestStatus = "APPROVED"
	TaskRequestStatusRejected TaskRequestStatus = "REJECTED"
)

type TaskRequest struct {
	ID          int32             `json:"requestId"`
	UserID      int32             `json:"userId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Photo       string            `json:"photo,omitempty"`
	Status      TaskRequestStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return TaskStatus(s), true
	}
	return "", false
}

type Task struct {
	ID            int32      `json:"taskId"`
	TaskRequestID int32      `json:"taskRequestId"`
	VolunteerID   *int32     `json:"volunteerId,omitempty"`
	Photo         string     `json:"photo"`
	Status        TaskStatus `json:"status"`
	// Remarks are append-only logs of timestamped lines, never overwritten.
	VolunteerRemarks string     `json:"volunteerRemarks,omitempty"`
	AdminRemarks     string     `json:"adminRemarks,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	Deadline         *time.Time `json:"deadline,omitempty"`
}

// AppendRemark adds a timestamped line to an existing remarks log.
func AppendRemark(existing, remark string, at time.Time) string {
	line := at.Format("2006-01-02 15:04") + ": " + remark
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}
