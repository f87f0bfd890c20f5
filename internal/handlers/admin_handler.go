package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/security"
	"github.com/Zumgugger/vielseitig/internal/service"
)

// AdminHandler serves the administration endpoints under /admin
type AdminHandler struct {
	authService      *service.AuthService
	accountService   *service.AccountService
	listService      *service.ListService
	analyticsService *service.AnalyticsService
	emailService     *service.EmailService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	authService *service.AuthService,
	accountService *service.AccountService,
	listService *service.ListService,
	analyticsService *service.AnalyticsService,
	emailService *service.EmailService,
) *AdminHandler {
	return &AdminHandler{
		authService:      authService,
		accountService:   accountService,
		listService:      listService,
		analyticsService: analyticsService,
		emailService:     emailService,
	}
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, admin, err := h.authService.LoginAdmin(req.Username, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, security.SessionCookieName, session.Token, session.ExpiresAt))
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":  "Login successful",
		"username": admin.Username,
	})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to log out", err)
			return
		}
	}
	http.SetCookie(w, security.CreateDeleteCookie(r, security.SessionCookieName))
	respondWithMessage(w, http.StatusOK, "Logged out")
}

// GetProfile handles GET /admin/profile
func (h *AdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	admin := GetAdminFromContext(r.Context())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":            admin.ID,
		"username":      admin.Username,
		"created_at":    admin.CreatedAt,
		"last_login_at": admin.LastLoginAt,
	})
}

// GetPendingUsers handles GET /admin/pending-users
func (h *AdminHandler) GetPendingUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountService.GetPendingUsers()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	views := []pendingUserView{}
	for _, u := range users {
		views = append(views, pendingUserView{
			ID:         u.ID,
			Email:      u.Email,
			SchoolName: u.SchoolName,
			Status:     u.Status,
			CreatedAt:  u.CreatedAt,
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}

// ApproveUser handles POST /admin/users/{userId}/approve
func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.accountService.ApproveUser(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	// Approval succeeds even if the notification fails
	if err := h.emailService.SendApprovalNotification(r.Context(), user.Email); err != nil {
		log.Printf("Failed to send approval notification for %s: %v", user.Email, err)
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "User approved",
		"email":   user.Email,
		"status":  user.Status,
	})
}

// RejectUser handles POST /admin/users/{userId}/reject
func (h *AdminHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.accountService.RejectUser(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "User rejected",
		"email":   user.Email,
	})
}

// GetUsers handles GET /admin/users
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountService.GetAllUsers()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	views := []userDetailView{}
	for _, u := range users {
		views = append(views, newUserDetailView(u.User, u.SchoolName))
	}
	respondWithJSON(w, http.StatusOK, views)
}

// GetUser handles GET /admin/users/{userId}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.accountService.GetUser(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	h.respondUserDetail(w, user)
}

type adminUserCreateRequest struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	SchoolID    int64      `json:"school_id"`
	Status      string     `json:"status"`
	ActiveUntil *time.Time `json:"active_until"`
	Notes       string     `json:"notes"`
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req adminUserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusActive
	}

	user, err := h.accountService.CreateUser(req.Email, req.Password, req.SchoolID, req.Status, req.Notes)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if req.ActiveUntil != nil {
		user, err = h.accountService.SetUserActivation(user.ID, req.Status, req.ActiveUntil)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
	}
	h.respondUserDetail(w, user)
}

type adminUserUpdateRequest struct {
	Email       *string    `json:"email"`
	SchoolID    *int64     `json:"school_id"`
	Status      *string    `json:"status"`
	ActiveUntil *time.Time `json:"active_until"`
	Notes       *string    `json:"notes"`
}

// UpdateUser handles PUT /admin/users/{userId}
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req adminUserUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, err := h.accountService.GetUser(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	email := user.Email
	if req.Email != nil {
		email = *req.Email
	}
	schoolID := user.SchoolID
	if req.SchoolID != nil {
		schoolID = *req.SchoolID
	}
	notes := user.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	user, err = h.accountService.UpdateUser(userID, email, schoolID, notes)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	if req.Status != nil || req.ActiveUntil != nil {
		status := user.Status
		if req.Status != nil {
			status = *req.Status
		}
		activeUntil := user.ActiveUntil
		if req.ActiveUntil != nil {
			activeUntil = req.ActiveUntil
		}
		user, err = h.accountService.SetUserActivation(userID, status, activeUntil)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
	}
	h.respondUserDetail(w, user)
}

// DeleteUser handles DELETE /admin/users/{userId}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.accountService.DeleteUser(userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "User deleted")
}

type activationRequest struct {
	Status      string     `json:"status"`
	ActiveUntil *time.Time `json:"active_until"`
}

// SetUserActivation handles PUT /admin/users/{userId}/activation
func (h *AdminHandler) SetUserActivation(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var req activationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	user, err := h.accountService.SetUserActivation(userID, req.Status, req.ActiveUntil)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "User activation updated",
		"id":           user.ID,
		"status":       user.Status,
		"active_until": user.ActiveUntil,
	})
}

// ResetUserPassword handles POST /admin/users/{userId}/reset-password
func (h *AdminHandler) ResetUserPassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	tempPassword, err := h.accountService.ResetUserPassword(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	user, err := h.accountService.GetUser(userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message":            "Password reset",
		"email":              user.Email,
		"temporary_password": tempPassword,
		"note":               "User should change this password on next login",
	})
}

// GetPendingSchools handles GET /admin/pending-schools
func (h *AdminHandler) GetPendingSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.accountService.GetPendingSchools()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	views := []adminSchoolView{}
	for _, s := range schools {
		views = append(views, adminSchoolView{
			ID:        s.ID,
			Name:      s.Name,
			Status:    s.Status,
			CreatedAt: s.CreatedAt,
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}

// ApproveSchool handles POST /admin/schools/{schoolId}/approve
func (h *AdminHandler) ApproveSchool(w http.ResponseWriter, r *http.Request) {
	h.setSchoolStatus(w, r, true)
}

// RejectSchool handles POST /admin/schools/{schoolId}/reject
func (h *AdminHandler) RejectSchool(w http.ResponseWriter, r *http.Request) {
	h.setSchoolStatus(w, r, false)
}

func (h *AdminHandler) setSchoolStatus(w http.ResponseWriter, r *http.Request, approve bool) {
	schoolID, ok := pathID(w, r, "schoolId")
	if !ok {
		return
	}

	var school *models.School
	var err error
	message := "School rejected"
	if approve {
		school, err = h.accountService.ApproveSchool(schoolID)
		message = "School approved"
	} else {
		school, err = h.accountService.RejectSchool(schoolID)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"name":    school.Name,
		"status":  school.Status,
	})
}

// GetSchools handles GET /admin/schools
func (h *AdminHandler) GetSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.accountService.GetAllSchools()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	views := []adminSchoolView{}
	for _, s := range schools {
		views = append(views, adminSchoolView{
			ID:              s.ID,
			Name:            s.Name,
			Status:          s.Status,
			CreatedAt:       s.CreatedAt,
			UserCount:       s.UserCount,
			ActiveUserCount: s.ActiveUserCount,
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}

type schoolCreateRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CreateSchool handles POST /admin/schools
func (h *AdminHandler) CreateSchool(w http.ResponseWriter, r *http.Request) {
	var req schoolCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusActive
	}

	school, err := h.accountService.CreateSchool(req.Name, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, adminSchoolView{
		ID:        school.ID,
		Name:      school.Name,
		Status:    school.Status,
		CreatedAt: school.CreatedAt,
	})
}

type schoolUpdateRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// UpdateSchool handles PUT /admin/schools/{schoolId}
func (h *AdminHandler) UpdateSchool(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := pathID(w, r, "schoolId")
	if !ok {
		return
	}

	var req schoolUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	school, err := h.accountService.GetSchool(schoolID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	name := school.Name
	if req.Name != nil {
		name = *req.Name
	}
	status := school.Status
	if req.Status != nil {
		status = *req.Status
	}

	school, err = h.accountService.UpdateSchool(schoolID, name, status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, adminSchoolView{
		ID:        school.ID,
		Name:      school.Name,
		Status:    school.Status,
		CreatedAt: school.CreatedAt,
	})
}

// DeleteSchool handles DELETE /admin/schools/{schoolId}
func (h *AdminHandler) DeleteSchool(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := pathID(w, r, "schoolId")
	if !ok {
		return
	}

	if err := h.accountService.DeleteSchool(schoolID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "School deleted")
}

// GetStandardList handles GET /admin/standard-list
func (h *AdminHandler) GetStandardList(w http.ResponseWriter, r *http.Request) {
	list, adjectives, err := h.listService.GetStandardList()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":          list.ID,
		"name":        list.Name,
		"description": list.Description,
		"adjectives":  newAdjectiveViews(adjectives),
	})
}

type standardAdjectiveUpdateRequest struct {
	Word        string `json:"word"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	OrderIndex  int64  `json:"order_index"`
}

// UpdateStandardAdjective handles PUT /admin/standard-list/{adjectiveId}
func (h *AdminHandler) UpdateStandardAdjective(w http.ResponseWriter, r *http.Request) {
	adjectiveID, ok := pathID(w, r, "adjectiveId")
	if !ok {
		return
	}

	var req standardAdjectiveUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	adjective, err := h.listService.UpdateStandardAdjective(adjectiveID, req.Word, req.Explanation, req.Example, req.OrderIndex)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAdjectiveView(*adjective))
}

// DeleteStandardAdjective handles DELETE /admin/standard-list/{adjectiveId}
func (h *AdminHandler) DeleteStandardAdjective(w http.ResponseWriter, r *http.Request) {
	adjectiveID, ok := pathID(w, r, "adjectiveId")
	if !ok {
		return
	}

	if err := h.listService.DeleteStandardAdjective(adjectiveID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Adjective deleted")
}

// GetAnalyticsSummary handles GET /admin/analytics/summary
func (h *AdminHandler) GetAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.GetSummary()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAnalyticsSummaryView(summary))
}

// GetAnalyticsSessions handles GET /admin/analytics/sessions
func (h *AdminHandler) GetAnalyticsSessions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	sessions, total, err := h.analyticsService.GetSessions(limit, offset)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total":    total,
		"sessions": newSessionOverviewViews(sessions),
	})
}

// GetAnalyticsSessionDetails handles GET /admin/analytics/sessions/{sessionId}
func (h *AdminHandler) GetAnalyticsSessionDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.analyticsService.GetSessionDetails(r.PathValue("sessionId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionDetailsView(details))
}

func (h *AdminHandler) respondUserDetail(w http.ResponseWriter, user *models.User) {
	schoolName := ""
	if school, err := h.accountService.GetSchool(user.SchoolID); err == nil {
		schoolName = school.Name
	}
	respondWithJSON(w, http.StatusOK, newUserDetailView(*user, schoolName))
}
