package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Zumgugger/vielseitig/internal/service"
)

// AnalyticsHandler serves the public endpoints pupils use while sorting:
// loading adjectives, session tracking and bucket assignments
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDefaultAdjectives handles GET /api/lists/default/adjectives
func (h *AnalyticsHandler) GetDefaultAdjectives(w http.ResponseWriter, r *http.Request) {
	list, adjectives, err := h.analyticsService.GetListAdjectives(nil)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAdjectiveListView(list, adjectives))
}

// GetListAdjectives handles GET /api/lists/{listId}/adjectives
func (h *AnalyticsHandler) GetListAdjectives(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}
	list, adjectives, err := h.analyticsService.GetListAdjectives(&listID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAdjectiveListView(list, adjectives))
}

// StartListSession handles POST /api/lists/{listId}/session
func (h *AnalyticsHandler) StartListSession(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}
	session, err := h.analyticsService.StartSession(&listID, nil)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionStartView(session))
}

// FinishListSession handles PUT /api/lists/{listId}/session/{sessionId}
func (h *AnalyticsHandler) FinishListSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.analyticsService.FinishSession(r.PathValue("sessionId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Session finished",
		"finished_at": session.FinishedAt,
	})
}

type sessionStartRequest struct {
	ListID  *int64 `json:"list_id"`
	ThemeID *int64 `json:"theme_id"`
}

// StartSession handles POST /api/analytics/session/start
func (h *AnalyticsHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req sessionStartRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	session, err := h.analyticsService.StartSession(req.ListID, req.ThemeID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newSessionStartView(session))
}

type assignmentRequest struct {
	AnalyticsSessionID string `json:"analytics_session_id"`
	AdjectiveID        int64  `json:"adjective_id"`
	Bucket             string `json:"bucket"`
}

// RecordAssignment handles POST /api/analytics/assignment
func (h *AnalyticsHandler) RecordAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	h.recordAssignment(w, req.AnalyticsSessionID, req.AdjectiveID, req.Bucket)
}

type sessionAssignmentRequest struct {
	AdjectiveID int64  `json:"adjective_id"`
	Bucket      string `json:"bucket"`
}

// RecordSessionAssignment handles POST /api/sessions/{sessionId}/record-assignment
func (h *AnalyticsHandler) RecordSessionAssignment(w http.ResponseWriter, r *http.Request) {
	var req sessionAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	h.recordAssignment(w, r.PathValue("sessionId"), req.AdjectiveID, req.Bucket)
}

func (h *AnalyticsHandler) recordAssignment(w http.ResponseWriter, sessionID string, adjectiveID int64, bucket string) {
	assignment, err := h.analyticsService.RecordAssignment(sessionID, adjectiveID, bucket)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Assignment recorded",
		"adjective_id": assignment.AdjectiveID,
		"bucket":       assignment.Bucket,
	})
}

type sessionFinishRequest struct {
	AnalyticsSessionID string `json:"analytics_session_id"`
}

// FinishSession handles POST /api/analytics/session/finish
func (h *AnalyticsHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	var req sessionFinishRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	session, err := h.analyticsService.FinishSession(req.AnalyticsSessionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Session finished",
		"finished_at": session.FinishedAt,
	})
}

type pdfExportRequest struct {
	AnalyticsSessionID string `json:"analytics_session_id"`
}

// MarkPDFExport handles POST /api/analytics/session/pdf-export
func (h *AnalyticsHandler) MarkPDFExport(w http.ResponseWriter, r *http.Request) {
	var req pdfExportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	session, err := h.analyticsService.MarkPDFExport(req.AnalyticsSessionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "PDF export recorded",
		"pdf_exported_at": session.PDFExportedAt,
	})
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// pathID parses a numeric path parameter, responding with 400 on bad input
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
