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

// channelSource retrieves channel metadata and schedules.
type channelSource interface {
	Channel(ctx context.Context, broadcasterID string) (*twitch.ChannelInfo, error)
	Schedule(ctx context.Context, broadcasterID string) ([]twitch.RawSegment, error)
}

// BroadcastersHandler serves channel metadata combined with the channel's
// schedule.
type BroadcastersHandler struct {
	Source channelSource
}

// NewBroadcastersHandler creates a new BroadcastersHandler.
func NewBroadcastersHandler(source channelSource) *BroadcastersHandler {
	return &BroadcastersHandler{Source: source}
}

// Get returns one broadcaster's metadata and schedule, 404 when the
// broadcaster does not exist upstream.
func (h *BroadcastersHandler) Get(w http.ResponseWriter, r *http.Request) {
	broadcasterID := strings.TrimSpace(mux.Vars(r)["broadcasterId"])
	if broadcasterID == "" {
		writeError(w, fmt.Errorf("%w: broadcaster id is required", models.ErrValidation))
		return
	}

	info, err := h.Source.Channel(r.Context(), broadcasterID)
	if err != nil {
		writeError(w, err)
		return
	}

	raw, err := h.Source.Schedule(r.Context(), broadcasterID)
	if err != nil {
		writeError(w, err)
		return
	}

	schedule := make([]models.ScheduleEntry, 0, len(raw))
	for _, s := range raw {
		schedule = append(schedule, models.ScheduleEntry{
			ID:          s.ID,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Title:       s.Title,
			IsRecurring: s.IsRecurring,
		})
	}

	tags := info.Tags
	if tags == nil {
		tags = []string{}
	}

	writeJSON(w, http.StatusOK, models.Broadcaster{
		ID:           info.BroadcasterID,
		Login:        info.BroadcasterLogin,
		Name:         info.BroadcasterName,
		CategoryID:   info.GameID,
		CategoryName: info.GameName,
		Language:     info.Language,
		Tags:         tags,
		Schedule:     schedule,
	})
}
