package handlers

import (
	"net/http"

	"github.com/skip2/go-qrcode"

	"github.com/Zumgugger/vielseitig/internal/service"
)

// ListHandler serves the teacher's list management endpoints under /user/lists
type ListHandler struct {
	listService *service.ListService
	baseURL     string
}

// NewListHandler creates a new list handler. baseURL is the public origin
// used when building share links for QR codes.
func NewListHandler(listService *service.ListService, baseURL string) *ListHandler {
	return &ListHandler{
		listService: listService,
		baseURL:     baseURL,
	}
}

// GetLists handles GET /user/lists: the teacher's overview
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	summaries, err := h.listService.GetUserLists(user)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newListSummaryViews(summaries))
}

type listCreateRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ShareWithSchool bool   `json:"share_with_school"`
}

// CreateList handles POST /user/lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req listCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	list, err := h.listService.CreateList(user, req.Name, req.Description, req.ShareWithSchool)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newListDetailView(list, nil))
}

// GetList handles GET /user/lists/{listId}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}

	list, adjectives, err := h.listService.GetListForUser(user, listID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newListDetailView(list, adjectives))
}

type listUpdateRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ShareWithSchool *bool   `json:"share_with_school"`
}

// UpdateList handles PUT /user/lists/{listId}
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}

	var req listUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	list, err := h.listService.UpdateList(user, listID, service.ListUpdate{
		Name:            req.Name,
		Description:     req.Description,
		ShareWithSchool: req.ShareWithSchool,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newListDetailView(list, nil))
}

// DeleteList handles DELETE /user/lists/{listId}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(user, listID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "List deleted")
}

// GetAdjectives handles GET /user/lists/{listId}/adjectives
func (h *ListHandler) GetAdjectives(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}

	adjectives, err := h.listService.GetAdjectivesForUser(user, listID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAdjectiveViews(adjectives))
}

type adjectiveCreateRequest struct {
	Word        string `json:"word"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
	OrderIndex  *int64 `json:"order_index"`
}

// AddAdjective handles POST /user/lists/{listId}/adjectives
func (h *ListHandler) AddAdjective(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}

	var req adjectiveCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	adjective, err := h.listService.AddAdjective(user, listID, req.Word, req.Explanation, req.Example, req.OrderIndex)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAdjectiveView(*adjective))
}

type adjectiveUpdateRequest struct {
	Word        *string `json:"word"`
	Explanation *string `json:"explanation"`
	Example     *string `json:"example"`
	OrderIndex  *int64  `json:"order_index"`
}

// UpdateAdjective handles PUT /user/lists/{listId}/adjectives/{adjectiveId}
func (h *ListHandler) UpdateAdjective(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}
	adjectiveID, ok := pathID(w, r, "adjectiveId")
	if !ok {
		return
	}

	var req adjectiveUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	adjective, err := h.listService.UpdateAdjective(user, listID, adjectiveID, service.AdjectiveUpdate{
		Word:        req.Word,
		Explanation: req.Explanation,
		Example:     req.Example,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAdjectiveView(*adjective))
}

// DeleteAdjective handles DELETE /user/lists/{listId}/adjectives/{adjectiveId}
func (h *ListHandler) DeleteAdjective(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}
	adjectiveID, ok := pathID(w, r, "adjectiveId")
	if !ok {
		return
	}

	if err := h.listService.DeleteAdjective(user, listID, adjectiveID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Adjective deleted")
}

// GetQRCode handles GET /user/lists/{listId}/qr: a PNG QR code pointing to
// the list's share link
func (h *ListHandler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	listID, ok := pathID(w, r, "listId")
	if !ok {
		return
	}

	token, err := h.listService.GetShareToken(user, listID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	png, err := qrcode.Encode(h.baseURL+"/l/"+token, qrcode.Low, 512)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to generate QR code", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="qr-code.png"`)
	w.Write(png)
}
