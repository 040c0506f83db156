package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BleepBlorpBlop/soundstories-app/internal/config"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/cache"
)

const tokenCacheKey = "spotify:access_token"

// tokenSafetyMargin is shaved off the advertised expiry so a token is never
// used in the last moments of its lifetime.
const tokenSafetyMargin = 60 * time.Second

// Client talks to the Spotify Web API using the client-credentials flow.
// Access tokens are cached in Redis so concurrent searches share one token
// instead of hammering the token endpoint.
type Client struct {
	httpClient   *http.Client
	cache        cache.Cache
	clientID     string
	clientSecret string
	tokenURL     string
	apiURL       string
	searchLimit  int
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NewClient creates a Spotify client
func NewClient(cfg config.SpotifyConfig, c cache.Cache) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		cache:        c,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		apiURL:       cfg.APIURL,
		searchLimit:  cfg.SearchLimit,
	}
}

// SearchTracks forwards a free-text query to the Spotify catalog search and
// returns the raw response body, which the handler relays to the admin form.
func (c *Client) SearchTracks(ctx context.Context, query string) (json.RawMessage, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get spotify access token: %w", err)
	}

	searchURL := fmt.Sprintf(
		"%s/v1/search?q=%s&type=track&limit=%s",
		c.apiURL,
		url.QueryEscape(query),
		strconv.Itoa(c.searchLimit),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read spotify response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify search returned status %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}

// accessToken returns a cached token or requests a fresh one
func (c *Client) accessToken(ctx context.Context) (string, error) {
	var token string
	if found, err := c.cache.Get(ctx, tokenCacheKey, &token); err == nil && found {
		return token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	ttl := time.Duration(tr.ExpiresIn)*time.Second - tokenSafetyMargin
	if ttl > 0 {
		// Cache failure is non-critical, the token itself is still good
		_ = c.cache.Set(ctx, tokenCacheKey, tr.AccessToken, ttl)
	}

	return tr.AccessToken, nil
}
