package models

import "time"

// Stream is a currently live broadcast, enriched for client consumption with
// an embeddable player URL and a thumbnail URL resolved to concrete
// dimensions.
type Stream struct {
	ID               string    `json:"id"`
	BroadcasterID    string    `json:"broadcasterId"`
	BroadcasterLogin string    `json:"broadcasterLogin"`
	BroadcasterName  string    `json:"broadcasterName"`
	Title            string    `json:"title"`
	CategoryID       string    `json:"categoryId"`
	CategoryName     string    `json:"categoryName"`
	ViewerCount      int       `json:"viewerCount"`
	StartedAt        time.Time `json:"startedAt"`
	Language         string    `json:"language,omitempty"`
	ThumbnailURL     string    `json:"thumbnailUrl"`
	PlayerURL        string    `json:"playerUrl"`
	IsMature         bool      `json:"isMature"`
}
