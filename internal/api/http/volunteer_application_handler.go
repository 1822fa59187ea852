package http

import (
	"net/http"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/service"
)

type VolunteerApplicationHandler struct {
	volunteers service.VolunteerService
}

func NewVolunteerApplicationHandler(volunteers service.VolunteerService) *VolunteerApplicationHandler {
	return &VolunteerApplicationHandler{volunteers: volunteers}
}

type applicationRequest struct {
	UserID      int32  `json:"userId"`
	Description string `json:"description"`
}

func (h *VolunteerApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app := &domain.VolunteerApplication{
		UserID:      req.UserID,
		Description: req.Description,
	}
	if err := h.volunteers.Apply(r.Context(), app); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *VolunteerApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.volunteers.ListApplications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *VolunteerApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "applicationId")
	if err != nil {
		writeError(w, err)
		return
	}
	app, err := h.volunteers.GetApplication(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *VolunteerApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "applicationId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	app := &domain.VolunteerApplication{
		UserID:      req.UserID,
		Description: req.Description,
	}
	updated, err := h.volunteers.UpdateApplication(r.Context(), id, app)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *VolunteerApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "applicationId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.volunteers.DeleteApplication(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "application deleted successfully"})
}

func (h *VolunteerApplicationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "applicationId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.volunteers.ApproveApplication(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "application approved"})
}

func (h *VolunteerApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "applicationId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.volunteers.RejectApplication(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "application rejected"})
}
