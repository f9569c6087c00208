package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"castguide/handlers"
	"castguide/models"
	"castguide/services/twitch"
)

type fakeChannelSource struct {
	channel     *twitch.ChannelInfo
	channelErr  error
	segments    []twitch.RawSegment
	scheduleErr error
}

func (f *fakeChannelSource) Channel(_ context.Context, _ string) (*twitch.ChannelInfo, error) {
	return f.channel, f.channelErr
}

func (f *fakeChannelSource) Schedule(_ context.Context, _ string) ([]twitch.RawSegment, error) {
	return f.segments, f.scheduleErr
}

func TestBroadcasters_NotFound(t *testing.T) {
	src := &fakeChannelSource{channelErr: fmt.Errorf("%w: broadcaster 999", models.ErrNotFound)}
	h := handlers.NewBroadcastersHandler(src)

	req := httptest.NewRequest(http.MethodGet, "/broadcasters/999", nil)
	req = mux.SetURLVars(req, map[string]string{"broadcasterId": "999"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBroadcasters_CombinesMetadataAndSchedule(t *testing.T) {
	start := time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC)
	src := &fakeChannelSource{
		channel: &twitch.ChannelInfo{
			BroadcasterID:    "100",
			BroadcasterLogin: "grandmaster",
			BroadcasterName:  "GrandMaster",
			GameID:           "743",
			GameName:         "Chess",
			Tags:             []string{"English", "Esports"},
		},
		segments: []twitch.RawSegment{
			{ID: "seg1", StartTime: start, EndTime: start.Add(2 * time.Hour), Title: "endgame study", IsRecurring: true},
		},
	}
	h := handlers.NewBroadcastersHandler(src)

	req := httptest.NewRequest(http.MethodGet, "/broadcasters/100", nil)
	req = mux.SetURLVars(req, map[string]string{"broadcasterId": "100"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out models.Broadcaster
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ID != "100" || out.Name != "GrandMaster" || out.CategoryName != "Chess" {
		t.Errorf("metadata not reshaped: %+v", out)
	}
	if len(out.Schedule) != 1 || out.Schedule[0].ID != "seg1" || !out.Schedule[0].IsRecurring {
		t.Errorf("schedule not attached: %+v", out.Schedule)
	}
	if len(out.Tags) != 2 {
		t.Errorf("expected 2 tags, got %v", out.Tags)
	}
}

func TestBroadcasters_ScheduleFailureIsServerError(t *testing.T) {
	src := &fakeChannelSource{
		channel:     &twitch.ChannelInfo{BroadcasterID: "100"},
		scheduleErr: fmt.Errorf("upstream 502"),
	}
	h := handlers.NewBroadcastersHandler(src)

	req := httptest.NewRequest(http.MethodGet, "/broadcasters/100", nil)
	req = mux.SetURLVars(req, map[string]string{"broadcasterId": "100"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestSchedule_ReturnsEntries(t *testing.T) {
	start := time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC)
	src := &fakeChannelSource{
		segments: []twitch.RawSegment{
			{ID: "seg1", StartTime: start, EndTime: start.Add(time.Hour), Title: "opening prep"},
		},
	}
	h := handlers.NewScheduleHandler(src)

	req := httptest.NewRequest(http.MethodGet, "/schedule/100", nil)
	req = mux.SetURLVars(req, map[string]string{"broadcasterId": "100"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []models.ScheduleEntry
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Title != "opening prep" {
		t.Errorf("unexpected entries: %+v", out)
	}
}

func TestSchedule_NoScheduleIsArray(t *testing.T) {
	src := &fakeChannelSource{}
	h := handlers.NewScheduleHandler(src)

	req := httptest.NewRequest(http.MethodGet, "/schedule/100", nil)
	req = mux.SetURLVars(req, map[string]string{"broadcasterId": "100"})
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
