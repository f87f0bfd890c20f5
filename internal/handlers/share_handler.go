package handlers

import (
	"fmt"
	"net/http"

	"github.com/Zumgugger/vielseitig/internal/models"
	"github.com/Zumgugger/vielseitig/internal/service"
)

// ShareHandler resolves public share links under /l
type ShareHandler struct {
	analyticsService *service.AnalyticsService
}

// NewShareHandler creates a new share handler
func NewShareHandler(analyticsService *service.AnalyticsService) *ShareHandler {
	return &ShareHandler{analyticsService: analyticsService}
}

type shareListView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Adjectives  []adjectiveView `json:"adjectives"`
}

func newShareListView(list *models.List, adjectives []models.Adjective) shareListView {
	return shareListView{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		Adjectives:  newAdjectiveViews(adjectives),
	}
}

// GetDefaultList handles GET /l: the standard list without a share token
func (h *ShareHandler) GetDefaultList(w http.ResponseWriter, r *http.Request) {
	list, adjectives, err := h.analyticsService.GetListAdjectives(nil)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newShareListView(list, adjectives))
}

// ResolveShareLink handles GET /l/{token}: validates the link and redirects
// to the student sorting view
func (h *ShareHandler) ResolveShareLink(w http.ResponseWriter, r *http.Request) {
	list, err := h.analyticsService.ResolveShareToken(r.PathValue("token"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/sort?listId=%d", list.ID), http.StatusFound)
}

// GetShareLinkData handles GET /l/{token}/data: the shared list's active
// adjectives for the sorting view
func (h *ShareHandler) GetShareLinkData(w http.ResponseWriter, r *http.Request) {
	list, err := h.analyticsService.ResolveShareToken(r.PathValue("token"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	list, adjectives, err := h.analyticsService.GetListAdjectives(&list.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newShareListView(list, adjectives))
}
