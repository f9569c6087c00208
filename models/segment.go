package models

import "time"

// ScheduleSegment is one scheduled or live broadcast window. Instances are
// created fresh per request from upstream records and discarded after the
// response is serialized; the normalizer builds new values rather than
// mutating these in place.
type ScheduleSegment struct {
	ID                string    `json:"id"`
	BroadcasterID     string    `json:"broadcasterId"`
	Since             time.Time `json:"since"`
	Till              time.Time `json:"till"`
	Title             string    `json:"title"`
	IsRecurring       bool      `json:"isRecurring"`
	ChannelCategoryID string    `json:"channelCategoryId,omitempty"`
}

// Duration returns the segment's length. Non-positive durations never appear
// in a normalized timeline.
func (s ScheduleSegment) Duration() time.Duration {
	return s.Till.Sub(s.Since)
}

// ScheduleEntry is the raw per-broadcaster schedule shape served by
// GET /schedule/{broadcasterId}, without aggregation tagging.
type ScheduleEntry struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Title       string    `json:"title"`
	IsRecurring bool      `json:"isRecurring"`
}
