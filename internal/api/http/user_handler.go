package http

import (
	"errors"
	"net/http"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/service"
)

type UserHandler struct {
	accounts service.AccountService
}

func NewUserHandler(accounts service.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Location    string `json:"location"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user := &domain.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.UserRole(req.Role),
		Location:    req.Location,
	}
	if err := h.accounts.Register(r.Context(), user, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	user, err := h.accounts.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	UserStatus  string `json:"userStatus"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var status domain.UserStatus
	if req.UserStatus != "" {
		s, ok := domain.ParseUserStatus(req.UserStatus)
		if !ok {
			writeError(w, domain.Invalid("unknown user status: %s", req.UserStatus))
			return
		}
		status = s
	}
	user, err := h.accounts.UpdateUser(r.Context(), id, &domain.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.UserRole(req.Role),
		Status:      status,
		Location:    req.Location,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.accounts.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	UserID     int32  `json:"userid,omitempty"`
	Role       string `json:"role,omitempty"`
	Name       string `json:"name,omitempty"`
	UserStatus string `json:"userStatus,omitempty"`
	Token      string `json:"token,omitempty"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) {
			switch derr.Kind {
			case domain.KindForbidden:
				writeJSON(w, http.StatusForbidden, loginResponse{
					Success:    false,
					Message:    derr.Message,
					UserStatus: string(domain.UserStatusBlocked),
				})
				return
			case domain.KindUnauthorized:
				writeJSON(w, http.StatusUnauthorized, loginResponse{
					Success: false,
					Message: derr.Message,
				})
				return
			}
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Success:    true,
		Message:    "login successful",
		UserID:     result.UserID,
		Role:       string(result.Role),
		Name:       result.Name,
		UserStatus: string(result.Status),
		Token:      result.Token,
	})
}
