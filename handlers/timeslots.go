package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"castguide/models"
)

// timeslotService builds the normalized timeline for a category key.
type timeslotService interface {
	Timeslots(ctx context.Context, categoryKey string) ([]models.ScheduleSegment, error)
}

// TimeslotsHandler serves the merged programming timeline.
type TimeslotsHandler struct {
	Service timeslotService
}

// NewTimeslotsHandler creates a new TimeslotsHandler.
func NewTimeslotsHandler(service timeslotService) *TimeslotsHandler {
	return &TimeslotsHandler{Service: service}
}

// Get returns the ordered, non-overlapping timeline for ?category=. A valid
// category with no live broadcasters yields an empty array, not an error.
func (h *TimeslotsHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(r.URL.Query().Get("category"))
	if key == "" {
		writeError(w, fmt.Errorf("%w: category query parameter is required", models.ErrValidation))
		return
	}

	timeline, err := h.Service.Timeslots(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	if timeline == nil {
		timeline = []models.ScheduleSegment{}
	}

	writeJSON(w, http.StatusOK, timeline)
}
