package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		client, err := NewClient("", zerolog.Nop())
		assert.Nil(t, client)
		assert.EqualError(t, err, "youtube API key is required")
	})

	t.Run("applies defaults", func(t *testing.T) {
		client, err := NewClient("test-key", zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		client, err := NewClient("test-key", zerolog.Nop(),
			WithBaseURL("https://example.com/youtube/v3/"))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/youtube/v3", client.baseURL)
	})

	t.Run("custom HTTP client wins over timeout", func(t *testing.T) {
		custom := &http.Client{Timeout: 5 * time.Second}
		client, err := NewClient("test-key", zerolog.Nop(),
			WithHTTPClient(custom), WithTimeout(time.Minute))
		require.NoError(t, err)
		assert.Same(t, custom, client.httpClient)
	})
}

func TestClientSendsHeadersAndKey(t *testing.T) {
	var gotAccept, gotUserAgent, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"kind": "youtube#channelListResponse", "items": []}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", zerolog.Nop(),
		WithBaseURL(server.URL), WithUserAgent("ytdata-test/1.0"))
	require.NoError(t, err)

	_, err = client.ChannelList().ID("UCabc").Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "ytdata-test/1.0", gotUserAgent)
	assert.Equal(t, "test-key", gotKey)
}

func TestClientParsesStructuredAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{
			"error": {
				"code": 403,
				"message": "The request cannot be completed because you have exceeded your quota.",
				"errors": [
					{"message": "The request cannot be completed because you have exceeded your quota.", "domain": "youtube.quota", "reason": "quotaExceeded"}
				],
				"status": "RESOURCE_EXHAUSTED"
			}
		}`))
	})

	_, err := client.VideoList().Chart(ChartMostPopular).Do(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, "RESOURCE_EXHAUSTED", apiErr.Status)
	assert.True(t, apiErr.IsQuotaExceeded())
	assert.Contains(t, apiErr.URL, "key=[API_KEY]")
	assert.NotContains(t, apiErr.URL, "test-key")
}

func TestClientFallsBackToRawErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := client.SearchList().Q("golang").Do(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
	assert.True(t, apiErr.IsServerError())
}

func TestClientWrapsTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.ChannelList().ID("UCabc").Do(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, transportErr.URL, "key=[API_KEY]")
}

func TestClientRejectsMalformedSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.ChannelList().ID("UCabc").Do(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse channels response")
}

func TestClientHonorsContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ChannelList().ID("UCabc").Do(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
