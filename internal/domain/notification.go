package domain

import "time"

type Notification struct {
	ID           int32      `json:"id"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Type         string     `json:"type"`
	TargetRole   string     `json:"targetRole"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"createdAt"`
}
