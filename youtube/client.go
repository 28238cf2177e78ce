package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the YouTube Data API v3 endpoint root.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Client represents a YouTube Data API client. It is read-only after
// construction, so a single instance may be shared by any number of
// goroutines and call builders.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new YouTube Data API client.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	o := defaultClientOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// ChannelList begins a channels.list request. The default part is id.
func (c *Client) ChannelList(parts ...ChannelPart) *ChannelListCall {
	if len(parts) == 0 {
		parts = []ChannelPart{ChannelPartID}
	}
	return &ChannelListCall{client: c, parts: parts}
}

// SearchList begins a search.list request. The default part is snippet and
// the default resource type filter is channel,playlist,video.
func (c *Client) SearchList(parts ...SearchPart) *SearchListCall {
	if len(parts) == 0 {
		parts = []SearchPart{SearchPartSnippet}
	}
	return &SearchListCall{
		client: c,
		parts:  parts,
		resourceTypes: []ResourceType{
			ResourceTypeChannel,
			ResourceTypePlaylist,
			ResourceTypeVideo,
		},
	}
}

// VideoList begins a videos.list request. The default part is id.
func (c *Client) VideoList(parts ...VideoPart) *VideoListCall {
	if len(parts) == 0 {
		parts = []VideoPart{VideoPartID}
	}
	return &VideoListCall{client: c, parts: parts}
}

// get performs one authenticated GET against the API and returns the body
// of a 2xx response. Non-2xx bodies are parsed into an *APIError.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	redacted := redactURL(req.URL)
	c.logger.Debug().Str("url", redacted).Msg("Making YouTube Data API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: redacted, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: redacted, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := parseAPIError(resp.StatusCode, body, redacted)
		c.logger.Debug().Int("status", apiErr.StatusCode).Str("url", redacted).Msg("YouTube Data API request failed")
		return nil, apiErr
	}

	return body, nil
}

// doList executes a validated list request and decodes the response
// envelope.
func doList[T any](ctx context.Context, c *Client, path string, params url.Values) (*ListResponse[T], error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var response ListResponse[T]
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", path, err)
	}

	return &response, nil
}
