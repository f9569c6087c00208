package models

import "time"

// CategoryResult is a reshaped upstream category search hit.
type CategoryResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"boxArtUrl"`
}

// ChannelResult is a reshaped upstream channel search hit.
type ChannelResult struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	Name         string    `json:"name"`
	CategoryID   string    `json:"categoryId,omitempty"`
	Language     string    `json:"language,omitempty"`
	IsLive       bool      `json:"isLive"`
	StartedAt    time.Time `json:"startedAt,omitzero"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Tags         []string  `json:"tags"`
}
