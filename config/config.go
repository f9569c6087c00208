package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"castguide/models"
)

// Settings holds all runtime configuration. It is built once at startup and
// injected into services; nothing reads the environment after Load returns.
type Settings struct {
	ListenAddr string

	// Upstream platform credentials (client_credentials grant).
	ClientID     string
	ClientSecret string

	// Upstream endpoints, overridable for tests and proxies.
	APIBaseURL  string
	AuthBaseURL string

	// PlayerParent is the parent domain required by the platform's embedded
	// player.
	PlayerParent string

	// FetchConcurrency bounds the number of simultaneous per-broadcaster
	// schedule lookups in the timeslot pipeline.
	FetchConcurrency int

	// FetchTimeout bounds a single per-broadcaster schedule lookup. A lookup
	// that exceeds it contributes an empty result, same as a network failure.
	FetchTimeout time.Duration

	LogFile  string
	LogLevel string

	// Categories maps client-facing category keys to upstream categories.
	Categories CategoryTable
}

// CategoryTable is the immutable mapping of category keys recognized by the
// API. Lookups never touch the upstream service.
type CategoryTable map[string]models.Category

// Lookup resolves a category key. The boolean is false for unknown keys.
func (t CategoryTable) Lookup(key string) (models.Category, bool) {
	c, ok := t[key]
	return c, ok
}

// DefaultCategories is the category table used when no override is configured.
var DefaultCategories = CategoryTable{
	"chess":         {ID: "743", Name: "Chess"},
	"poker":         {ID: "488190", Name: "Poker"},
	"music":         {ID: "26936", Name: "Music"},
	"art":           {ID: "509660", Name: "Art"},
	"science":       {ID: "509670", Name: "Science & Technology"},
	"just-chatting": {ID: "509658", Name: "Just Chatting"},
}

// Load reads configuration from the environment, after sourcing an optional
// .env file. Missing credentials are an error; everything else has defaults.
func Load() (*Settings, error) {
	// Absent .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	s := &Settings{
		ListenAddr:       envOr("CASTGUIDE_ADDR", ":8723"),
		ClientID:         os.Getenv("CASTGUIDE_CLIENT_ID"),
		ClientSecret:     os.Getenv("CASTGUIDE_CLIENT_SECRET"),
		APIBaseURL:       envOr("CASTGUIDE_API_URL", "https://api.twitch.tv/helix"),
		AuthBaseURL:      envOr("CASTGUIDE_AUTH_URL", "https://id.twitch.tv"),
		PlayerParent:     envOr("CASTGUIDE_PLAYER_PARENT", "localhost"),
		FetchConcurrency: envIntOr("CASTGUIDE_FETCH_CONCURRENCY", 8),
		FetchTimeout:     envDurationOr("CASTGUIDE_FETCH_TIMEOUT", 15*time.Second),
		LogFile:          envOr("CASTGUIDE_LOG_FILE", ""),
		LogLevel:         envOr("CASTGUIDE_LOG_LEVEL", "info"),
		Categories:       DefaultCategories,
	}

	if s.ClientID == "" || s.ClientSecret == "" {
		return nil, fmt.Errorf("CASTGUIDE_CLIENT_ID and CASTGUIDE_CLIENT_SECRET must be set")
	}
	if s.FetchConcurrency < 1 {
		return nil, fmt.Errorf("CASTGUIDE_FETCH_CONCURRENCY must be positive")
	}

	return s, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
