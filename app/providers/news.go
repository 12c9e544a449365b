// Package providers contains the HTTP clients for the external content
// sources. Every client returns normalized content and treats provider
// failures as an absence of data: the dashboard operates on whatever subset
// of sources is currently available.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dailydash/dailydash/app/content"
)

const newsBaseURL = "https://newsdata.io/api/1"

// NewsClient fetches articles from newsdata.io.
type NewsClient struct {
	apiKey     string
	language   string
	userAgent  string
	baseURL    string
	httpClient *http.Client
}

func NewNewsClient(apiKey, language, userAgent string) *NewsClient {
	return &NewsClient{
		apiKey:     apiKey,
		language:   language,
		userAgent:  userAgent,
		baseURL:    newsBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured reports whether an API key is available.
func (c *NewsClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Fetch returns normalized news articles for the given categories. An empty
// category set yields no news content.
func (c *NewsClient) Fetch(ctx context.Context, categories []string) ([]content.NormalizedContent, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("news API key not configured")
	}

	params := url.Values{
		"apikey":   {c.apiKey},
		"category": {strings.Join(categories, ",")},
		"language": {c.language},
	}

	body, err := c.get(ctx, c.baseURL+"/news?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response struct {
		Results []content.NewsArticle `json:"results"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}

	return content.NormalizeNews(response.Results), nil
}

func (c *NewsClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
