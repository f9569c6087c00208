package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"castguide/config"
	"castguide/models"
	"castguide/services/twitch"
	"castguide/utils"
)

// streamSource lists currently live streams for an upstream category id.
type streamSource interface {
	LiveStreams(ctx context.Context, categoryID string) ([]twitch.LiveStream, error)
}

// StreamsHandler serves live streams per category, enriched for embedding.
type StreamsHandler struct {
	Source       streamSource
	Categories   config.CategoryTable
	PlayerParent string
}

// NewStreamsHandler creates a new StreamsHandler.
func NewStreamsHandler(source streamSource, categories config.CategoryTable, playerParent string) *StreamsHandler {
	return &StreamsHandler{
		Source:       source,
		Categories:   categories,
		PlayerParent: playerParent,
	}
}

// ListByCategory returns live streams in a category, each with a player URL
// and a thumbnail resolved to concrete dimensions.
func (h *StreamsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(mux.Vars(r)["category"])
	if key == "" {
		writeError(w, fmt.Errorf("%w: category is required", models.ErrValidation))
		return
	}

	category, ok := h.Categories.Lookup(key)
	if !ok {
		writeError(w, fmt.Errorf("%w: %q", models.ErrUnknownCategory, key))
		return
	}

	live, err := h.Source.LiveStreams(r.Context(), category.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	streams := make([]models.Stream, 0, len(live))
	for _, s := range live {
		streams = append(streams, models.Stream{
			ID:               s.ID,
			BroadcasterID:    s.UserID,
			BroadcasterLogin: s.UserLogin,
			BroadcasterName:  s.UserName,
			Title:            s.Title,
			CategoryID:       s.GameID,
			CategoryName:     s.GameName,
			ViewerCount:      s.ViewerCount,
			StartedAt:        s.StartedAt,
			Language:         s.Language,
			ThumbnailURL:     utils.ResolveThumbnail(s.ThumbnailURL, utils.ThumbnailWidth, utils.ThumbnailHeight),
			PlayerURL:        utils.PlayerURL(s.UserLogin, h.PlayerParent),
			IsMature:         s.IsMature,
		})
	}

	writeJSON(w, http.StatusOK, streams)
}
