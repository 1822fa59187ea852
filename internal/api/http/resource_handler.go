package http

import (
	"net/http"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/service"
)

type ResourceHandler struct {
	allocation service.AllocationService
}

func NewResourceHandler(allocation service.AllocationService) *ResourceHandler {
	return &ResourceHandler{allocation: allocation}
}

type resourceRequestBody struct {
	UserID            int32  `json:"userId"`
	ResourceID        int32  `json:"resourceId"`
	Location          string `json:"location"`
	RequestedQuantity int32  `json:"requestedQuantity"`
}

func (h *ResourceHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req resourceRequestBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.allocation.CreateRequest(r.Context(), req.UserID, req.ResourceID, req.Location, req.RequestedQuantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ResourceHandler) AcceptAndAllocate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.allocation.AcceptAndAllocate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ResourceHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.allocation.RejectRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "resource request rejected"})
}

func (h *ResourceHandler) ListRequestsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.allocation.ListRequestsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ResourceHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.allocation.ListRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

type replenishRequest struct {
	Amount int32 `json:"amount"`
}

func (h *ResourceHandler) Replenish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "resourceId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req replenishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.allocation.Replenish(r.Context(), id, req.Amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "resource quantity replenished"})
}

type addResourceRequest struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	AvailableQuantity int32  `json:"availableQuantity"`
}

func (h *ResourceHandler) AddResource(w http.ResponseWriter, r *http.Request) {
	var req addResourceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res := &domain.Resource{
		Name:              req.Name,
		Type:              req.Type,
		AvailableQuantity: req.AvailableQuantity,
	}
	if err := h.allocation.AddResource(r.Context(), res); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.allocation.ListResources(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "resourceId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.allocation.DeleteResource(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "resource deleted successfully"})
}
