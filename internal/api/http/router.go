package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Users         *UserHandler
	Disasters     *DisasterHandler
	Resources     *ResourceHandler
	Tasks         *TaskHandler
	Applications  *VolunteerApplicationHandler
	Notifications *NotificationHandler
	Auth          *AuthHandler
}

// NewRouter wires all routes and wraps them with the auth middleware.
func NewRouter(h Handlers, auth *AuthMiddleware) http.Handler {
	r := mux.NewRouter()

	// Users and login.
	r.HandleFunc("/api/users", h.Users.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/users", h.Users.List).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{userId:[0-9]+}", h.Users.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{userId:[0-9]+}", h.Users.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/users/{userId:[0-9]+}", h.Users.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/api/login", h.Users.Login).Methods(http.MethodPost)

	// Password reset.
	r.HandleFunc("/auth/forgot-password", h.Auth.ForgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/auth/reset-password", h.Auth.ResetPassword).Methods(http.MethodPost)

	// Disasters.
	r.HandleFunc("/api/disasters", h.Disasters.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/disasters", h.Disasters.List).Methods(http.MethodGet)
	r.HandleFunc("/api/disasters/type/{disasterType}", h.Disasters.ListByType).Methods(http.MethodGet)
	r.HandleFunc("/api/disasters/severity/{severity}", h.Disasters.ListBySeverity).Methods(http.MethodGet)
	r.HandleFunc("/api/disasters/status/{status}", h.Disasters.ListByStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/disasters/{id:[0-9]+}", h.Disasters.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/disasters/{id:[0-9]+}", h.Disasters.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/disasters/{id:[0-9]+}", h.Disasters.Delete).Methods(http.MethodDelete)

	// Resource requests and resources.
	r.HandleFunc("/api/resource-requests/request", h.Resources.CreateRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/resource-requests/accept-allocate/{requestId:[0-9]+}", h.Resources.AcceptAndAllocate).Methods(http.MethodPut)
	r.HandleFunc("/api/resource-requests/reject/{requestId:[0-9]+}", h.Resources.RejectRequest).Methods(http.MethodPut)
	r.HandleFunc("/api/resource-requests/user/{userId:[0-9]+}", h.Resources.ListRequestsByUser).Methods(http.MethodGet)
	r.HandleFunc("/api/resource-requests/admin", h.Resources.ListRequests).Methods(http.MethodGet)
	r.HandleFunc("/api/resource-requests/replenish/{resourceId:[0-9]+}", h.Resources.Replenish).Methods(http.MethodPut)
	r.HandleFunc("/api/resource-requests/resources", h.Resources.AddResource).Methods(http.MethodPost)
	r.HandleFunc("/api/resource-requests/resources", h.Resources.ListResources).Methods(http.MethodGet)
	r.HandleFunc("/api/resource-requests/resources/{resourceId:[0-9]+}", h.Resources.DeleteResource).Methods(http.MethodDelete)

	// Task requests.
	r.HandleFunc("/api/task-requests", h.Tasks.CreateTaskRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/task-requests", h.Tasks.ListTaskRequests).Methods(http.MethodGet)
	r.HandleFunc("/api/task-requests/user/{userId:[0-9]+}", h.Tasks.ListTaskRequestsByUser).Methods(http.MethodGet)
	r.HandleFunc("/api/task-requests/status/{status}", h.Tasks.ListTaskRequestsByStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/task-requests/{requestId:[0-9]+}/approve", h.Tasks.ApproveTaskRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/task-requests/{requestId:[0-9]+}/reject", h.Tasks.RejectTaskRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/task-requests/{requestId:[0-9]+}", h.Tasks.DeleteTaskRequest).Methods(http.MethodDelete)

	// Tasks.
	r.HandleFunc("/api/tasks/available", h.Tasks.ListAvailableTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/volunteer/{volunteerId:[0-9]+}", h.Tasks.ListTasksByVolunteer).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{taskId:[0-9]+}/accept", h.Tasks.AcceptTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/{taskId:[0-9]+}/status", h.Tasks.UpdateTaskStatus).Methods(http.MethodPut)
	r.HandleFunc("/api/tasks/{taskId:[0-9]+}/volunteer-remarks", h.Tasks.AddVolunteerRemarks).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/{taskId:[0-9]+}/admin-remarks", h.Tasks.AddAdminRemarks).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/{taskId:[0-9]+}/remarks", h.Tasks.GetTaskRemarks).Methods(http.MethodGet)

	// Volunteer applications.
	r.HandleFunc("/volunteer-applications", h.Applications.Apply).Methods(http.MethodPost)
	r.HandleFunc("/volunteer-applications", h.Applications.List).Methods(http.MethodGet)
	r.HandleFunc("/volunteer-applications/{applicationId:[0-9]+}", h.Applications.Get).Methods(http.MethodGet)
	r.HandleFunc("/volunteer-applications/{applicationId:[0-9]+}", h.Applications.Update).Methods(http.MethodPut)
	r.HandleFunc("/volunteer-applications/{applicationId:[0-9]+}", h.Applications.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/volunteer-applications/{applicationId:[0-9]+}/accept", h.Applications.Approve).Methods(http.MethodPut)
	r.HandleFunc("/volunteer-applications/{applicationId:[0-9]+}/reject", h.Applications.Reject).Methods(http.MethodPut)

	// Notifications.
	r.HandleFunc("/api/notifications", h.Notifications.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/notifications/user/{role}", h.Notifications.ListForRole).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications/{notificationId:[0-9]+}", h.Notifications.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/notifications/{notificationId:[0-9]+}", h.Notifications.Delete).Methods(http.MethodDelete)

	return auth.Handler(r)
}
