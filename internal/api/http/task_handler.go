package http

import (
	"net/http"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/service"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	tasks service.TaskService
}

func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type taskRequestBody struct {
	UserID      int32  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Photo       string `json:"photo"`
}

func (h *TaskHandler) CreateTaskRequest(w http.ResponseWriter, r *http.Request) {
	var req taskRequestBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	created := &domain.TaskRequest{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Photo:       req.Photo,
	}
	if err := h.tasks.CreateTaskRequest(r.Context(), created); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TaskHandler) ListTaskRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.tasks.ListTaskRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *TaskHandler) ListTaskRequestsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	requests, err := h.tasks.ListTaskRequestsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *TaskHandler) ListTaskRequestsByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.TaskRequestStatus(mux.Vars(r)["status"])
	switch status {
	case domain.TaskRequestStatusPending, domain.TaskRequestStatusApproved, domain.TaskRequestStatusRejected:
	default:
		writeError(w, domain.Invalid("unknown task request status: %s", status))
		return
	}
	requests, err := h.tasks.ListTaskRequestsByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *TaskHandler) ApproveTaskRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	task, err := h.tasks.ApproveTaskRequest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) RejectTaskRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tasks.RejectTaskRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "task request rejected"})
}

func (h *TaskHandler) DeleteTaskRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "requestId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tasks.DeleteTaskRequest(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "task request deleted"})
}

func (h *TaskHandler) ListAvailableTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListAvailableTasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) ListTasksByVolunteer(w http.ResponseWriter, r *http.Request) {
	volunteerID, err := pathID(r, "volunteerId")
	if err != nil {
		writeError(w, err)
		return
	}
	tasks, err := h.tasks.ListTasksByVolunteer(r.Context(), volunteerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type acceptTaskRequest struct {
	VolunteerID int32 `json:"volunteerId"`
}

func (h *TaskHandler) AcceptTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req acceptTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	task, err := h.tasks.AcceptTask(r.Context(), id, req.VolunteerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	status, ok := domain.ParseTaskStatus(req.Status)
	if !ok {
		writeError(w, domain.Invalid("unknown task status: %s", req.Status))
		return
	}
	task, err := h.tasks.UpdateTaskStatus(r.Context(), id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type remarksRequest struct {
	Remarks string `json:"remarks"`
}

func (h *TaskHandler) AddVolunteerRemarks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req remarksRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	task, err := h.tasks.AddVolunteerRemarks(r.Context(), id, req.Remarks)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) AddAdminRemarks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req remarksRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	task, err := h.tasks.AddAdminRemarks(r.Context(), id, req.Remarks)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type remarksResponse struct {
	VolunteerRemarks string `json:"volunteerRemarks"`
	AdminRemarks     string `json:"adminRemarks"`
}

func (h *TaskHandler) GetTaskRemarks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "taskId")
	if err != nil {
		writeError(w, err)
		return
	}
	volunteerRemarks, adminRemarks, err := h.tasks.GetTaskRemarks(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, remarksResponse{
		VolunteerRemarks: volunteerRemarks,
		AdminRemarks:     adminRemarks,
	})
}
