package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"castguide/models"
	"castguide/services/twitch"
)

// scheduleSource retrieves one broadcaster's raw schedule.
type scheduleSource interface {
	Schedule(ctx context.Context, broadcasterID string) ([]twitch.RawSegment, error)
}

// ScheduleHandler serves a single broadcaster's schedule without aggregation.
type ScheduleHandler struct {
	Source scheduleSource
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(source scheduleSource) *ScheduleHandler {
	return &ScheduleHandler{Source: source}
}

// Get returns the broadcaster's schedule entries as the upstream reports
// them. A broadcaster without a schedule yields an empty array.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	broadcasterID := strings.TrimSpace(mux.Vars(r)["broadcasterId"])
	if broadcasterID == "" {
		writeError(w, fmt.Errorf("%w: broadcaster id is required", models.ErrValidation))
		return
	}

	raw, err := h.Source.Schedule(r.Context(), broadcasterID)
	if err != nil {
		writeError(w, err)
		return
	}

	entries := make([]models.ScheduleEntry, 0, len(raw))
	for _, s := range raw {
		entries = append(entries, models.ScheduleEntry{
			ID:          s.ID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Title:       s.Title,
			IsRecurring: s.IsRecurring,
		})
	}

	writeJSON(w, http.StatusOK, entries)
}
