package handlers

import (
	"net/http"

	"github.com/Zumgugger/vielseitig/internal/security"
	"github.com/Zumgugger/vielseitig/internal/service"
)

// UserHandler serves teacher registration, login and profile endpoints
type UserHandler struct {
	authService    *service.AuthService
	accountService *service.AccountService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService, accountService *service.AccountService) *UserHandler {
	return &UserHandler{
		authService:    authService,
		accountService: accountService,
	}
}

type registerRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	SchoolID   *int64 `json:"school_id"`
	SchoolName string `json:"school_name"`
}

// Register handles POST /user/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), req.Email, req.Password, req.SchoolID, req.SchoolName)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Registration received, awaiting approval",
		"email":   user.Email,
		"status":  user.Status,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /user/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, security.SessionCookieName, session.Token, session.ExpiresAt))
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"email":   user.Email,
		"status":  user.Status,
	})
}

// Logout handles POST /user/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to log out", err)
			return
		}
	}
	http.SetCookie(w, security.CreateDeleteCookie(r, security.SessionCookieName))
	respondWithMessage(w, http.StatusOK, "Logged out")
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	school, err := h.accountService.GetSchool(user.SchoolID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newUserProfileView(user, school))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateProfile handles PUT /user/profile (password change)
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.authService.ChangePassword(user, req.CurrentPassword, req.NewPassword); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Password updated successfully")
}

// GetSchool handles GET /user/schools: the teacher's own school
func (h *UserHandler) GetSchool(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	school, err := h.accountService.GetSchool(user.SchoolID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, schoolView{ID: school.ID, Name: school.Name, Status: school.Status})
}
