package models

import "time"

// Video is a reshaped upstream video-on-demand record.
type Video struct {
	ID            string    `json:"id"`
	BroadcasterID string    `json:"broadcasterId"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	ViewCount     int       `json:"viewCount"`
	Duration      string    `json:"duration"`
	PublishedAt   time.Time `json:"publishedAt"`
}
