package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"castguide/models"
	"castguide/services/twitch"
	"castguide/utils"
)

// videoSource retrieves a broadcaster's published videos.
type videoSource interface {
	Videos(ctx context.Context, broadcasterID string) ([]twitch.RawVideo, error)
}

// VideosHandler serves reshaped video-on-demand records.
type VideosHandler struct {
	Source videoSource
}

// NewVideosHandler creates a new VideosHandler.
func NewVideosHandler(source videoSource) *VideosHandler {
	return &VideosHandler{Source: source}
}

// ListByBroadcaster returns one broadcaster's videos.
func (h *VideosHandler) ListByBroadcaster(w http.ResponseWriter, r *http.Request) {
	broadcasterID := strings.TrimSpace(mux.Vars(r)["broadcasterId"])
	if broadcasterID == "" {
		writeError(w, fmt.Errorf("%w: broadcaster id is required", models.ErrValidation))
		return
	}

	raw, err := h.Source.Videos(r.Context(), broadcasterID)
	if err != nil {
		writeError(w, err)
		return
	}

	videos := make([]models.Video, 0, len(raw))
	for _, v := range raw {
		videos = append(videos, models.Video{
			ID:            v.ID,
			BroadcasterID: v.UserID,
			Title:         v.Title,
			URL:           v.URL,
			ThumbnailURL:  utils.ResolveThumbnail(v.ThumbnailURL, utils.ThumbnailWidth, utils.ThumbnailHeight),
			ViewCount:     v.ViewCount,
			Duration:      v.Duration,
			PublishedAt:   v.PublishedAt,
		})
	}

	writeJSON(w, http.StatusOK, videos)
}
