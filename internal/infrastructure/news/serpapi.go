package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sanikasail00/Vexstrom-Hackathon/internal/config"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/domain"
	"github.com/sanikasail00/Vexstrom-Hackathon/internal/ports"
)

const defaultTimeout = 15 * time.Second

// SerpAPIClient implements ports.NewsSearcher against the SerpAPI search
// endpoint using the google_news engine.
type SerpAPIClient struct {
	endpoint string
	engine   string
	apiKey   string
	http     *http.Client
}

var _ ports.NewsSearcher = (*SerpAPIClient)(nil)

// NewSerpAPIClient builds a client from configuration.
func NewSerpAPIClient(cfg config.NewsConfig) *SerpAPIClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SerpAPIClient{
		endpoint: cfg.Endpoint,
		engine:   cfg.Engine,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	NewsResults []struct {
		Title *string `json:"title"`
	} `json:"news_results"`
}

// Search runs one query and returns the news headlines. A result without a
// title is treated as a malformed response.
func (c *SerpAPIClient) Search(ctx context.Context, query string) ([]domain.NewsResult, error) {
	if c == nil || c.apiKey == "" || c.endpoint == "" {
		return nil, fmt.Errorf("serpapi client misconfigured")
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid serpapi endpoint %s: %w", c.endpoint, err)
	}
	params := endpoint.Query()
	params.Set("engine", c.engine)
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: serpapi %s: %s", domain.ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrMalformedResult, err)
	}

	results := make([]domain.NewsResult, 0, len(decoded.NewsResults))
	for i, item := range decoded.NewsResults {
		if item.Title == nil {
			return nil, fmt.Errorf("%w: news_results[%d] has no title", domain.ErrMalformedResult, i)
		}
		results = append(results, domain.NewsResult{Title: *item.Title})
	}

	return results, nil
}
