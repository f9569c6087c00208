package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"castguide/models"
	"castguide/services/twitch"
	"castguide/utils"
)

// searchSource runs upstream search queries.
type searchSource interface {
	SearchCategories(ctx context.Context, query string) ([]twitch.RawCategory, error)
	SearchChannels(ctx context.Context, query string) ([]twitch.RawChannel, error)
}

// SearchHandler serves reshaped upstream search results.
type SearchHandler struct {
	Source searchSource
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(source searchSource) *SearchHandler {
	return &SearchHandler{Source: source}
}

// Categories returns reshaped category search hits for ?query=.
func (h *SearchHandler) Categories(w http.ResponseWriter, r *http.Request) {
	query, ok := h.requireQuery(w, r)
	if !ok {
		return
	}

	raw, err := h.Source.SearchCategories(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]models.CategoryResult, 0, len(raw))
	for _, c := range raw {
		results = append(results, models.CategoryResult{
			ID:        c.ID,
			Name:      c.Name,
			BoxArtURL: utils.ResolveThumbnail(c.BoxArtURL, utils.ThumbnailWidth, utils.ThumbnailHeight),
		})
	}

	writeJSON(w, http.StatusOK, results)
}

// Channels returns reshaped channel search hits for ?query=.
func (h *SearchHandler) Channels(w http.ResponseWriter, r *http.Request) {
	query, ok := h.requireQuery(w, r)
	if !ok {
		return
	}

	raw, err := h.Source.SearchChannels(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]models.ChannelResult, 0, len(raw))
	for _, c := range raw {
		result := models.ChannelResult{
			ID:           c.ID,
			Login:        c.Login,
			Name:         c.DisplayName,
			CategoryID:   c.GameID,
			Language:     c.Language,
			IsLive:       c.IsLive,
			ThumbnailURL: c.ThumbnailURL,
			Tags:         c.Tags,
		}
		if result.Tags == nil {
			result.Tags = []string{}
		}
		// started_at is empty for offline channels.
		if c.IsLive && c.StartedAt != "" {
			if startedAt, err := time.Parse(time.RFC3339, c.StartedAt); err == nil {
				result.StartedAt = startedAt
			}
		}
		results = append(results, result)
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *SearchHandler) requireQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, fmt.Errorf("%w: query parameter is required", models.ErrValidation))
		return "", false
	}
	return query, true
}
