package twitch

import "time"

// LiveStream is one record from the /streams endpoint.
type LiveStream struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	UserName     string    `json:"user_name"`
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Title        string    `json:"title"`
	ViewerCount  int       `json:"viewer_count"`
	StartedAt    time.Time `json:"started_at"`
	Language     string    `json:"language"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsMature     bool      `json:"is_mature"`
}

// RawSegment is one schedule segment as the /schedule endpoint returns it.
// Broadcaster and category identifiers are not top-level fields; the
// aggregation layer tags them on during conversion.
type RawSegment struct {
	ID          string     `json:"id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Title       string     `json:"title"`
	IsRecurring bool       `json:"is_recurring"`
	Category    *RawNested `json:"category"`
}

// RawNested is the nested category object carried by schedule segments.
type RawNested struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ChannelInfo is one record from the /channels endpoint.
type ChannelInfo struct {
	BroadcasterID    string   `json:"broadcaster_id"`
	BroadcasterLogin string   `json:"broadcaster_login"`
	BroadcasterName  string   `json:"broadcaster_name"`
	GameID           string   `json:"game_id"`
	GameName         string   `json:"game_name"`
	Language         string   `json:"broadcaster_language"`
	Title            string   `json:"title"`
	Tags             []string `json:"tags"`
}

// RawVideo is one record from the /videos endpoint.
type RawVideo struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int       `json:"view_count"`
	Duration     string    `json:"duration"`
	PublishedAt  time.Time `json:"published_at"`
}

// RawCategory is one record from the /search/categories endpoint.
type RawCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`
}

// RawChannel is one record from the /search/channels endpoint.
// started_at stays a string: the API sends "" for offline channels, which
// does not parse as RFC3339.
type RawChannel struct {
	ID           string   `json:"id"`
	Login        string   `json:"broadcaster_login"`
	DisplayName  string   `json:"display_name"`
	GameID       string   `json:"game_id"`
	Language     string   `json:"broadcaster_language"`
	IsLive       bool     `json:"is_live"`
	StartedAt    string   `json:"started_at"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Tags         []string `json:"tags"`
}
