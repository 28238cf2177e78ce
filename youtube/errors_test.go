package youtube

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderErrorDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      *BuilderError
		wantKind BuilderErrorKind
		wantMsg  string
	}{
		{
			name:     "invalid parameter",
			err:      invalidParameter("parameter `id` must contain at least one video id"),
			wantKind: InvalidParameter,
			wantMsg:  "builder error: \"Request contains an invalid argument: parameter `id` must contain at least one video id\"",
		},
		{
			name:     "incompatible parameters",
			err:      incompatibleParameters([]string{"id", "mine"}),
			wantKind: IncompatibleParameters,
			wantMsg:  `builder error: "Incompatible parameters specified in the request: id, mine"`,
		},
		{
			name:     "missing required filter",
			err:      missingRequiredFilter([]string{"chart", "id", "myRating"}),
			wantKind: MissingRequiredParameter,
			wantMsg:  `builder error: "No filter selected. Expected one of: chart, id, myRating"`,
		},
		{
			name:     "authorization required",
			err:      authorizationRequired("forMine"),
			wantKind: AuthorizationRequired,
			wantMsg:  "builder error: \"The request uses the `forMine` parameter but is not properly authorized\"",
		},
		{
			name:     "type must be video",
			err:      typeMustBeVideo("videoDuration"),
			wantKind: InvalidParameter,
			wantMsg:  "builder error: \"Request contains an invalid argument: parameter `type` must be set to `video` when using `videoDuration`\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.err.Kind)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestBuilderErrorKindString(t *testing.T) {
	assert.Equal(t, "invalid parameter", InvalidParameter.String())
	assert.Equal(t, "incompatible parameters", IncompatibleParameters.String())
	assert.Equal(t, "missing required parameter", MissingRequiredParameter.String())
	assert.Equal(t, "authorization required", AuthorizationRequired.String())
	assert.Equal(t, "unknown", BuilderErrorKind(42).String())
}

func TestErrorDetailString(t *testing.T) {
	tests := []struct {
		name   string
		detail ErrorDetail
		want   string
	}{
		{
			name: "without location",
			detail: ErrorDetail{
				Message: "The request is missing a valid API key.",
				Domain:  "global",
				Reason:  "forbidden",
			},
			want: `message: "The request is missing a valid API key.", domain: "global", reason: "forbidden"`,
		},
		{
			name: "with location",
			detail: ErrorDetail{
				Message:      "Invalid value.",
				Domain:       "youtube.parameter",
				Reason:       "invalidValue",
				Location:     "part",
				LocationType: "parameter",
			},
			want: `message: "Invalid value.", domain: "youtube.parameter", reason: "invalidValue", location: "part", location_type: "parameter"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.detail.String())
		})
	}
}

func TestAPIErrorDisplay(t *testing.T) {
	clientErr := &APIError{
		StatusCode: 403,
		Status:     "PERMISSION_DENIED",
		Message:    "The request is missing a valid API key.",
		Errors: []ErrorDetail{
			{Message: "The request is missing a valid API key.", Domain: "global", Reason: "forbidden"},
		},
		URL: "/youtube/v3/channels?id=abc&key=[API_KEY]&part=id",
	}
	assert.Equal(t,
		`client error for url ("/youtube/v3/channels?id=abc&key=[API_KEY]&part=id"): 403 Forbidden status: "PERMISSION_DENIED" message: "The request is missing a valid API key." [message: "The request is missing a valid API key.", domain: "global", reason: "forbidden"]`,
		clientErr.Error())

	serverErr := &APIError{StatusCode: 503, Message: "backend unavailable"}
	assert.Equal(t,
		`server error: 503 Service Unavailable message: "backend unavailable" []`,
		serverErr.Error())
}

func TestAPIErrorClassifiers(t *testing.T) {
	notFound := &APIError{StatusCode: 404}
	assert.True(t, notFound.IsClientError())
	assert.False(t, notFound.IsServerError())
	assert.True(t, notFound.IsNotFound())
	assert.False(t, notFound.IsQuotaExceeded())

	quota := &APIError{
		StatusCode: 403,
		Errors:     []ErrorDetail{{Domain: "youtube.quota", Reason: "quotaExceeded"}},
	}
	assert.True(t, quota.IsQuotaExceeded())

	internal := &APIError{StatusCode: 500}
	assert.False(t, internal.IsClientError())
	assert.True(t, internal.IsServerError())
}

func TestParseAPIError(t *testing.T) {
	t.Run("structured envelope", func(t *testing.T) {
		body := []byte(`{
			"error": {
				"code": 400,
				"message": "Request contains an invalid argument.",
				"errors": [
					{"message": "Request contains an invalid argument.", "domain": "global", "reason": "badRequest"}
				],
				"status": "INVALID_ARGUMENT"
			}
		}`)

		apiErr := parseAPIError(400, body, "/youtube/v3/search?key=[API_KEY]")
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, "INVALID_ARGUMENT", apiErr.Status)
		assert.Equal(t, "Request contains an invalid argument.", apiErr.Message)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "badRequest", apiErr.Errors[0].Reason)
		assert.Equal(t, "/youtube/v3/search?key=[API_KEY]", apiErr.URL)
	})

	t.Run("non-json body falls back to raw text", func(t *testing.T) {
		apiErr := parseAPIError(502, []byte("Bad Gateway\n"), "/youtube/v3/videos?key=[API_KEY]")
		assert.Equal(t, 502, apiErr.StatusCode)
		assert.Equal(t, "Bad Gateway", apiErr.Message)
		assert.Empty(t, apiErr.Status)
		assert.Empty(t, apiErr.Errors)
	})

	t.Run("json body without envelope falls back", func(t *testing.T) {
		apiErr := parseAPIError(500, []byte(`{"oops": true}`), "")
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, `{"oops": true}`, apiErr.Message)
	})
}

func TestTransportErrorUnwrap(t *testing.T) {
	underlying := errors.New("connection refused")
	transportErr := &TransportError{URL: "/youtube/v3/videos?key=[API_KEY]", Err: underlying}

	assert.Equal(t,
		`transport error for url ("/youtube/v3/videos?key=[API_KEY]"): connection refused`,
		transportErr.Error())
	assert.ErrorIs(t, transportErr, underlying)
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "redacts key and sorts pairs",
			raw:  "https://www.googleapis.com/youtube/v3/channels?part=snippet&key=secret123&id=abc",
			want: "/youtube/v3/channels?id=abc&key=[API_KEY]&part=snippet",
		},
		{
			name: "no key parameter",
			raw:  "https://www.googleapis.com/youtube/v3/videos?chart=mostPopular&part=id",
			want: "/youtube/v3/videos?chart=mostPopular&part=id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, redactURL(u))
		})
	}
}
