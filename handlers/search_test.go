package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"castguide/handlers"
	"castguide/models"
	"castguide/services/twitch"
)

type fakeSearchSource struct {
	categories []twitch.RawCategory
	channels   []twitch.RawChannel
	err        error
}

func (f *fakeSearchSource) SearchCategories(_ context.Context, _ string) ([]twitch.RawCategory, error) {
	return f.categories, f.err
}

func (f *fakeSearchSource) SearchChannels(_ context.Context, _ string) ([]twitch.RawChannel, error) {
	return f.channels, f.err
}

func TestSearchCategories_MissingQuery(t *testing.T) {
	h := handlers.NewSearchHandler(&fakeSearchSource{})

	req := httptest.NewRequest(http.MethodGet, "/search/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchCategories_ReshapesHits(t *testing.T) {
	h := handlers.NewSearchHandler(&fakeSearchSource{
		categories: []twitch.RawCategory{
			{ID: "743", Name: "Chess", BoxArtURL: "https://cdn.example.com/boxart-{width}x{height}.jpg"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/search/categories?query=chess", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	var out []models.CategoryResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != "743" {
		t.Fatalf("unexpected results: %+v", out)
	}
	if out[0].BoxArtURL != "https://cdn.example.com/boxart-440x248.jpg" {
		t.Errorf("box art template not resolved: %q", out[0].BoxArtURL)
	}
}

func TestSearchChannels_ParsesStartedAtOnlyWhenLive(t *testing.T) {
	h := handlers.NewSearchHandler(&fakeSearchSource{
		channels: []twitch.RawChannel{
			{ID: "100", Login: "grandmaster", DisplayName: "GrandMaster", IsLive: true, StartedAt: "2025-03-01T18:00:00Z"},
			{ID: "200", Login: "offlineguy", DisplayName: "OfflineGuy", IsLive: false, StartedAt: ""},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/search/channels?query=master", nil)
	rec := httptest.NewRecorder()

	h.Channels(rec, req)

	var out []models.ChannelResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out))
	}

	want := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	if !out[0].StartedAt.Equal(want) {
		t.Errorf("expected startedAt %v, got %v", want, out[0].StartedAt)
	}
	if !out[1].StartedAt.IsZero() {
		t.Errorf("offline channel should have zero startedAt, got %v", out[1].StartedAt)
	}
	if out[1].Tags == nil {
		t.Error("tags should serialize as an empty array, not null")
	}
}

func TestSearchChannels_MissingQuery(t *testing.T) {
	h := handlers.NewSearchHandler(&fakeSearchSource{})

	req := httptest.NewRequest(http.MethodGet, "/search/channels", nil)
	rec := httptest.NewRecorder()

	h.Channels(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
