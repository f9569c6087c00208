package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"castguide/models"
)

const defaultPageSize = 100

// Client issues read queries against the platform's public API using an
// app access token (client_credentials grant). The token is memoized behind
// a mutex and refreshed when it nears expiry, so a Client is safe to share
// across concurrent pipeline invocations.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	apiBaseURL   string
	authBaseURL  string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// tokenResponse is the response from the OAuth token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// NewClient creates a new API client.
func NewClient(clientID, clientSecret, apiBaseURL, authBaseURL string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		apiBaseURL:   strings.TrimSuffix(apiBaseURL, "/"),
		authBaseURL:  strings.TrimSuffix(authBaseURL, "/"),
	}
}

// AccessToken returns a valid app access token, requesting a fresh one when
// none is cached or the cached one expires within a minute.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBaseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", models.ErrUpstreamAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: token request: %s - %s", models.ErrUpstreamAuth, resp.Status, string(respBody))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", models.ErrUpstreamAuth, err)
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// get issues an authenticated GET against an API endpoint and decodes the
// response body into out. A 404 maps to models.ErrNotFound so callers can
// distinguish "does not exist" from upstream outage.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return err
	}

	u := c.apiBaseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNotFound, endpoint)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api request %s failed: %s - %s", endpoint, resp.Status, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// LiveStreams returns the first page of currently live streams for a
// category.
func (c *Client) LiveStreams(ctx context.Context, categoryID string) ([]LiveStream, error) {
	params := url.Values{
		"game_id": {categoryID},
		"first":   {fmt.Sprint(defaultPageSize)},
	}
	var payload struct {
		Data []LiveStream `json:"data"`
	}
	if err := c.get(ctx, "/streams", params, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// Schedule returns a broadcaster's schedule segments. A broadcaster with no
// schedule configured yields an empty slice, not an error.
func (c *Client) Schedule(ctx context.Context, broadcasterID string) ([]RawSegment, error) {
	params := url.Values{
		"broadcaster_id": {broadcasterID},
		"first":          {"25"},
	}
	var payload struct {
		Data struct {
			Segments []RawSegment `json:"segments"`
		} `json:"data"`
	}
	err := c.get(ctx, "/schedule", params, &payload)
	if err != nil {
		// The API answers 404 for broadcasters that never set up a schedule.
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payload.Data.Segments, nil
}

// Channel returns channel metadata for one broadcaster, or models.ErrNotFound
// when the broadcaster does not exist.
func (c *Client) Channel(ctx context.Context, broadcasterID string) (*ChannelInfo, error) {
	params := url.Values{"broadcaster_id": {broadcasterID}}
	var payload struct {
		Data []ChannelInfo `json:"data"`
	}
	if err := c.get(ctx, "/channels", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("%w: broadcaster %s", models.ErrNotFound, broadcasterID)
	}
	return &payload.Data[0], nil
}

// Videos returns the first page of a broadcaster's published videos.
func (c *Client) Videos(ctx context.Context, broadcasterID string) ([]RawVideo, error) {
	params := url.Values{
		"user_id": {broadcasterID},
		"first":   {fmt.Sprint(defaultPageSize)},
	}
	var payload struct {
		Data []RawVideo `json:"data"`
	}
	if err := c.get(ctx, "/videos", params, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// SearchCategories searches upstream categories by name.
func (c *Client) SearchCategories(ctx context.Context, query string) ([]RawCategory, error) {
	params := url.Values{
		"query": {query},
		"first": {fmt.Sprint(defaultPageSize)},
	}
	var payload struct {
		Data []RawCategory `json:"data"`
	}
	if err := c.get(ctx, "/search/categories", params, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// SearchChannels searches upstream channels by name.
func (c *Client) SearchChannels(ctx context.Context, query string) ([]RawChannel, error) {
	params := url.Values{
		"query": {query},
		"first": {fmt.Sprint(defaultPageSize)},
	}
	var payload struct {
		Data []RawChannel `json:"data"`
	}
	if err := c.get(ctx, "/search/channels", params, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}
