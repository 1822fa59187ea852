package http

import (
	"net/http"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type notificationRequest struct {
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Type         string     `json:"type"`
	TargetRole   string     `json:"targetRole"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

func (req *notificationRequest) toDomain() *domain.Notification {
	return &domain.Notification{
		Title:        req.Title,
		Message:      req.Message,
		Type:         req.Type,
		TargetRole:   req.TargetRole,
		ScheduledFor: req.ScheduledFor,
	}
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	n := req.toDomain()
	if err := h.notifications.Create(r.Context(), n); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) ListForRole(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]
	list, err := h.notifications.ListForRole(r.Context(), role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *NotificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "notificationId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.notifications.Update(r.Context(), id, req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "notificationId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.notifications.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "notification deactivated"})
}
