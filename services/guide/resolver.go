package guide

import "castguide/services/twitch"

// broadcasterIDs extracts the distinct broadcaster identifiers from a list of
// live-stream records, preserving order of first appearance. Each stream
// belongs to exactly one broadcaster, so there is nothing to reconcile.
func broadcasterIDs(streams []twitch.LiveStream) []string {
	seen := make(map[string]bool, len(streams))
	ids := make([]string, 0, len(streams))
	for _, stream := range streams {
		if stream.UserID == "" || seen[stream.UserID] {
			continue
		}
		seen[stream.UserID] = true
		ids = append(ids, stream.UserID)
	}
	return ids
}
