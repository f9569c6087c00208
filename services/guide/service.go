package guide

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"castguide/config"
	"castguide/models"
	"castguide/services/twitch"
)

// Platform is the subset of the upstream client the timeslot pipeline needs.
type Platform interface {
	LiveStreams(ctx context.Context, categoryID string) ([]twitch.LiveStream, error)
	Schedule(ctx context.Context, broadcasterID string) ([]twitch.RawSegment, error)
}

// Service assembles per-category programming timelines: discover live
// broadcasters, fetch their schedules concurrently, merge into one
// non-overlapping timeline.
type Service struct {
	platform     Platform
	categories   config.CategoryTable
	concurrency  int
	fetchTimeout time.Duration
	log          *slog.Logger
}

// New creates a new guide service. concurrency bounds simultaneous schedule
// lookups; fetchTimeout bounds each individual lookup (zero disables it).
func New(platform Platform, categories config.CategoryTable, concurrency int, fetchTimeout time.Duration) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		platform:     platform,
		categories:   categories,
		concurrency:  concurrency,
		fetchTimeout: fetchTimeout,
		log:          slog.Default().With("component", "guide"),
	}
}

// Timeslots returns the normalized timeline for a category key.
//
// An unrecognized key fails with models.ErrUnknownCategory before any
// upstream call. A failed live-stream lookup fails with
// models.ErrUpstreamUnavailable. Individual schedule lookups that fail only
// lose that broadcaster's contribution.
func (s *Service) Timeslots(ctx context.Context, categoryKey string) ([]models.ScheduleSegment, error) {
	category, ok := s.categories.Lookup(categoryKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCategory, categoryKey)
	}

	streams, err := s.platform.LiveStreams(ctx, category.ID)
	if err != nil {
		if errors.Is(err, models.ErrUpstreamAuth) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: live streams for category %q: %v", models.ErrUpstreamUnavailable, categoryKey, err)
	}

	ids := broadcasterIDs(streams)
	if len(ids) == 0 {
		return []models.ScheduleSegment{}, nil
	}

	segments := s.fetchSchedules(ctx, ids)

	timeline, err := Normalize(segments)
	if err != nil {
		return nil, err
	}
	return timeline, nil
}

// fetchSchedules looks up every broadcaster's schedule concurrently and
// returns the flattened union. All lookups are issued before any result is
// consumed; each goroutine writes only its own result slot. A failed or
// timed-out lookup contributes nothing and never fails the batch.
func (s *Service) fetchSchedules(ctx context.Context, broadcasterIDs []string) []models.ScheduleSegment {
	results := make([][]models.ScheduleSegment, len(broadcasterIDs))

	p := pool.New().WithMaxGoroutines(s.concurrency)
	for i, id := range broadcasterIDs {
		p.Go(func() {
			segments, err := s.fetchOne(ctx, id)
			if err != nil {
				s.log.Warn("schedule lookup failed, dropping broadcaster from timeline",
					"endpoint", "/schedule",
					"broadcaster_id", id,
					"error", err)
				return
			}
			results[i] = segments
		})
	}
	p.Wait()

	var all []models.ScheduleSegment
	for _, segments := range results {
		all = append(all, segments...)
	}
	return all
}

// fetchOne retrieves and converts a single broadcaster's schedule.
func (s *Service) fetchOne(ctx context.Context, broadcasterID string) ([]models.ScheduleSegment, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	raw, err := s.platform.Schedule(ctx, broadcasterID)
	if err != nil {
		return nil, err
	}
	return convertSegments(broadcasterID, raw)
}

// convertSegments tags raw schedule segments with their owning broadcaster
// and the category carried in the segment's nested category object. A
// malformed segment rejects the whole broadcaster response; the caller
// degrades that to an empty contribution.
func convertSegments(broadcasterID string, raw []twitch.RawSegment) ([]models.ScheduleSegment, error) {
	segments := make([]models.ScheduleSegment, 0, len(raw))
	for _, r := range raw {
		if r.StartTime.IsZero() || r.EndTime.IsZero() || !r.StartTime.Before(r.EndTime) {
			return nil, fmt.Errorf("%w: segment %q of broadcaster %s has malformed time window", models.ErrValidation, r.ID, broadcasterID)
		}
		segment := models.ScheduleSegment{
			ID:            r.ID,
			BroadcasterID: broadcasterID,
			Since:         r.StartTime.UTC(),
			Till:          r.EndTime.UTC(),
			Title:         r.Title,
			IsRecurring:   r.IsRecurring,
		}
		if r.Category != nil {
			segment.ChannelCategoryID = r.Category.ID
		}
		segments = append(segments, segment)
	}
	return segments, nil
}
