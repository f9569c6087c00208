package guide

import (
	"fmt"
	"sort"

	"castguide/models"
)

// Normalize merges an unordered set of schedule segments into a single
// timeline: sorted ascending by start, no two segments occupying conflicting
// time, no duplicates, no empty windows.
//
// Broadcasters' schedules are independent sources of truth that may claim
// overlapping slots. The merge favors whichever segment sorts first and
// shifts the later segment's start forward to abut it. The shift is a local
// decision against the most recently accepted segment only; earlier output
// is never revisited. A segment whose window is fully consumed by the shift
// is dropped, including when it only became empty by absorption into a
// predecessor sharing its start time.
//
// Input segments must have a positive-length window; anything else is
// rejected with models.ErrValidation. Inputs are not mutated.
func Normalize(segments []models.ScheduleSegment) ([]models.ScheduleSegment, error) {
	for _, s := range segments {
		if s.Since.IsZero() || s.Till.IsZero() {
			return nil, fmt.Errorf("%w: segment %q has missing timestamps", models.ErrValidation, s.ID)
		}
		if !s.Since.Before(s.Till) {
			return nil, fmt.Errorf("%w: segment %q starts at or after its end", models.ErrValidation, s.ID)
		}
	}

	sorted := make([]models.ScheduleSegment, len(segments))
	copy(sorted, segments)
	// Stable keeps insertion order for equal starts; no secondary key is
	// defined.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Since.Before(sorted[j].Since)
	})

	timeline := make([]models.ScheduleSegment, 0, len(sorted))
	for _, item := range sorted {
		if len(timeline) == 0 {
			timeline = append(timeline, item)
			continue
		}

		last := timeline[len(timeline)-1]
		if item.Since.Before(last.Till) {
			item.Since = last.Till
		}
		if item.Since.Equal(last.Since) && item.Till.Equal(last.Till) {
			continue
		}
		if !item.Since.Before(item.Till) {
			continue
		}
		timeline = append(timeline, item)
	}
	return timeline, nil
}
