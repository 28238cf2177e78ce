package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// BuilderErrorKind classifies request validation failures detected before
// any network call is made.
type BuilderErrorKind int

const (
	// InvalidParameter means the request specifies an invalid parameter
	// value, or a parameter whose companion requirement is not met.
	InvalidParameter BuilderErrorKind = iota

	// IncompatibleParameters means the request specifies two or more
	// parameters that cannot be used in the same request.
	IncompatibleParameters

	// MissingRequiredParameter means the request is missing a required
	// parameter.
	MissingRequiredParameter

	// AuthorizationRequired means the request uses a parameter that
	// requires authentication this client does not possess.
	AuthorizationRequired
)

// String returns a human-readable name for the kind.
func (k BuilderErrorKind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid parameter"
	case IncompatibleParameters:
		return "incompatible parameters"
	case MissingRequiredParameter:
		return "missing required parameter"
	case AuthorizationRequired:
		return "authorization required"
	default:
		return "unknown"
	}
}

// BuilderError is a request validation failure. It is always resolvable
// without a network call: a request is only sent once every builder-side
// check has passed.
type BuilderError struct {
	Kind    BuilderErrorKind
	Message string
}

// Error implements the error interface.
func (e *BuilderError) Error() string {
	return fmt.Sprintf("builder error: %q", e.Message)
}

func invalidParameter(format string, args ...any) *BuilderError {
	return &BuilderError{
		Kind:    InvalidParameter,
		Message: "Request contains an invalid argument: " + fmt.Sprintf(format, args...),
	}
}

func incompatibleParameters(names []string) *BuilderError {
	return &BuilderError{
		Kind:    IncompatibleParameters,
		Message: "Incompatible parameters specified in the request: " + strings.Join(names, ", "),
	}
}

func missingRequiredFilter(names []string) *BuilderError {
	return &BuilderError{
		Kind:    MissingRequiredParameter,
		Message: "No filter selected. Expected one of: " + strings.Join(names, ", "),
	}
}

func authorizationRequired(name string) *BuilderError {
	return &BuilderError{
		Kind:    AuthorizationRequired,
		Message: fmt.Sprintf("The request uses the `%s` parameter but is not properly authorized", name),
	}
}

func typeMustBeVideo(name string) *BuilderError {
	return invalidParameter("parameter `type` must be set to `video` when using `%s`", name)
}

// ErrorDetail is one violation record from an upstream error payload.
// Upstream wording is preserved verbatim.
type ErrorDetail struct {
	Message      string `json:"message"`
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

// String renders the detail in the message/domain/reason/location order
// used by diagnostics output.
func (d ErrorDetail) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "message: %q, domain: %q, reason: %q", d.Message, d.Domain, d.Reason)
	if d.Location != "" {
		fmt.Fprintf(&b, ", location: %q", d.Location)
	}
	if d.LocationType != "" {
		fmt.Fprintf(&b, ", location_type: %q", d.LocationType)
	}
	return b.String()
}

// APIError represents a structured non-2xx response from the YouTube Data
// API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Errors     []ErrorDetail

	// URL is the path and query of the request that caused the error,
	// with the API key redacted and the query keys sorted.
	URL string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	var b strings.Builder
	if e.IsServerError() {
		b.WriteString("server error")
	} else {
		b.WriteString("client error")
	}
	if e.URL != "" {
		fmt.Fprintf(&b, " for url (%q)", e.URL)
	}
	fmt.Fprintf(&b, ": %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Status != "" {
		fmt.Fprintf(&b, " status: %q", e.Status)
	}
	fmt.Fprintf(&b, " message: %q", e.Message)
	b.WriteString(" [")
	for i, detail := range e.Errors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(detail.String())
	}
	b.WriteString("]")
	return b.String()
}

// IsClientError reports whether the upstream rejected the request (4xx).
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the upstream itself failed (5xx).
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsQuotaExceeded reports whether any violation record carries the
// quotaExceeded reason.
func (e *APIError) IsQuotaExceeded() bool {
	for _, detail := range e.Errors {
		if detail.Reason == "quotaExceeded" {
			return true
		}
	}
	return false
}

// apiErrorBody mirrors the documented upstream error envelope.
type apiErrorBody struct {
	Error struct {
		Code    int           `json:"code"`
		Message string        `json:"message"`
		Errors  []ErrorDetail `json:"errors"`
		Status  string        `json:"status"`
	} `json:"error"`
}

// parseAPIError converts a non-2xx response body into an *APIError.
// Bodies that are not the documented envelope keep the raw text as the
// message.
func parseAPIError(statusCode int, body []byte, redactedURL string) *APIError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Code != 0 {
		return &APIError{
			StatusCode: parsed.Error.Code,
			Status:     parsed.Error.Status,
			Message:    parsed.Error.Message,
			Errors:     parsed.Error.Errors,
			URL:        redactedURL,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
		URL:        redactedURL,
	}
}

// TransportError wraps a network-layer failure. It carries no upstream
// detail beyond the redacted request URL.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for url (%q): %v", e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error { return e.Err }

// redactURL renders a request URL for diagnostics. The API key value is
// replaced with a placeholder and query parameters are sorted so the
// rendering is deterministic.
func redactURL(u *url.URL) string {
	query := u.Query()
	pairs := make([]string, 0, len(query))
	for key, values := range query {
		for _, value := range values {
			if key == "key" {
				value = "[API_KEY]"
			}
			pairs = append(pairs, key+"="+value)
		}
	}
	sort.Strings(pairs)
	return u.Path + "?" + strings.Join(pairs, "&")
}
