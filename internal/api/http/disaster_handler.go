package http

import (
	"net/http"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/service"

	"github.com/gorilla/mux"
)

type DisasterHandler struct {
	disasters service.DisasterService
}

func NewDisasterHandler(disasters service.DisasterService) *DisasterHandler {
	return &DisasterHandler{disasters: disasters}
}

type disasterRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"disasterType"`
	Severity    string `json:"severity"`
	Status      string `json:"status"`
}

func (req *disasterRequest) toDomain() *domain.Disaster {
	return &domain.Disaster{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Type:        domain.DisasterType(req.Type),
		Severity:    domain.DisasterSeverity(req.Severity),
		Status:      domain.DisasterStatus(req.Status),
	}
}

func (h *DisasterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req disasterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	d := req.toDomain()
	if err := h.disasters.Create(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (h *DisasterHandler) List(w http.ResponseWriter, r *http.Request) {
	disasters, err := h.disasters.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, disasters)
}

func (h *DisasterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := h.disasters.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DisasterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req disasterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	d, err := h.disasters.Update(r.Context(), id, req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DisasterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.disasters.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "disaster deleted successfully"})
}

func (h *DisasterHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	t, ok := domain.ParseDisasterType(mux.Vars(r)["disasterType"])
	if !ok {
		writeError(w, domain.Invalid("unknown disaster type: %s", mux.Vars(r)["disasterType"]))
		return
	}
	disasters, err := h.disasters.ListByType(r.Context(), t)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, disasters)
}

func (h *DisasterHandler) ListBySeverity(w http.ResponseWriter, r *http.Request) {
	s, ok := domain.ParseDisasterSeverity(mux.Vars(r)["severity"])
	if !ok {
		writeError(w, domain.Invalid("unknown severity: %s", mux.Vars(r)["severity"]))
		return
	}
	disasters, err := h.disasters.ListBySeverity(r.Context(), s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, disasters)
}

func (h *DisasterHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := domain.ParseDisasterStatus(mux.Vars(r)["status"])
	if !ok {
		writeError(w, domain.Invalid("unknown status: %s", mux.Vars(r)["status"]))
		return
	}
	disasters, err := h.disasters.ListByStatus(r.Context(), s)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, disasters)
}
