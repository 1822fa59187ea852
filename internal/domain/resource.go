package domain

import "time"

type Resource struct {
	ID                int32  `json:"resourceId"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	AvailableQuantity int32  `json:"availableQuantity"`
}

type ResourceRequestStatus string

const (
	ResourceRequestStatusPending ResourceRequestStatus = "PENDING"
	// ACCEPTED only appears on rows written before accept and allocate
	// became a single step; new requests move PENDING -> ALLOCATED.
	ResourceRequestStatusAccepted  ResourceRequestStatus = "ACCEPTED"
	ResourceRequestStatusRejected  ResourceRequestStatus = "REJECTED"
	ResourceRequestStatusAllocated ResourceRequestStatus = "ALLOCATED"
)

type ResourceRequest struct {
	ID                int32                 `json:"requestId"`
	UserID            int32                 `json:"userId"`
	ResourceID        int32                 `json:"resourceId"`
	Location          string                `json:"location"`
	Status            ResourceRequestStatus `json:"status"`
	RequestedQuantity int32                 `json:"requestedQuantity"`
	RequestDate       time.Time             `json:"requestDate"`
}

// AllocationResult reports the outcome of an accept-and-allocate attempt.
// An insufficient resource balance is a declined result, not an error.
type AllocationResult struct {
	Allocated bool   `json:"allocated"`
	Message   string `json:"message"`
}
