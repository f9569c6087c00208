package models

// Broadcaster is channel metadata for one broadcaster, combined with that
// broadcaster's raw schedule.
type Broadcaster struct {
	ID           string          `json:"id"`
	Login        string          `json:"login"`
	Name         string          `json:"name"`
	CategoryID   string          `json:"categoryId,omitempty"`
	CategoryName string          `json:"categoryName,omitempty"`
	Language     string          `json:"language,omitempty"`
	Tags         []string        `json:"tags"`
	Schedule     []ScheduleEntry `json:"schedule"`
}
