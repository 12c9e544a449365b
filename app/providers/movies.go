package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dailydash/dailydash/app/content"
)

const movieBaseURL = "https://api.themoviedb.org/3"

// MovieClient fetches popular and trending movies from TMDB.
type MovieClient struct {
	apiKey     string
	userAgent  string
	baseURL    string
	httpClient *http.Client
}

func NewMovieClient(apiKey, userAgent string) *MovieClient {
	return &MovieClient{
		apiKey:     apiKey,
		userAgent:  userAgent,
		baseURL:    movieBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured reports whether an API key is available.
func (c *MovieClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Popular returns the normalized popular-movies batch.
func (c *MovieClient) Popular(ctx context.Context) ([]content.NormalizedContent, error) {
	movies, err := c.fetch(ctx, "/movie/popular")
	if err != nil {
		return nil, err
	}
	return content.NormalizeMovies(movies, false), nil
}

// Trending returns the normalized trending-movies batch, release dates
// included.
func (c *MovieClient) Trending(ctx context.Context) ([]content.NormalizedContent, error) {
	movies, err := c.fetch(ctx, "/trending/movie/day")
	if err != nil {
		return nil, err
	}
	return content.NormalizeMovies(movies, true), nil
}

func (c *MovieClient) fetch(ctx context.Context, path string) ([]content.Movie, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB API key not configured")
	}

	params := url.Values{"api_key": {c.apiKey}}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response struct {
		Results []content.Movie `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode movie response: %w", err)
	}

	return response.Results, nil
}
