package youtube

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// queryParams accumulates wire query parameters. Empty or absent values
// are never stored, so optional parameters can be passed through
// unconditionally.
type queryParams struct {
	values url.Values
}

func newQueryParams() queryParams {
	return queryParams{values: url.Values{}}
}

func (q queryParams) set(key, value string) {
	if value == "" {
		return
	}
	q.values.Set(key, value)
}

func (q queryParams) setBool(key string, value *bool) {
	if value == nil {
		return
	}
	q.values.Set(key, strconv.FormatBool(*value))
}

func (q queryParams) setInt(key string, value *int64) {
	if value == nil {
		return
	}
	q.values.Set(key, strconv.FormatInt(*value, 10))
}

func (q queryParams) setTime(key string, value time.Time) {
	if value.IsZero() {
		return
	}
	q.values.Set(key, value.UTC().Format(time.RFC3339))
}

// joinTokens comma-joins enum tokens for list-valued parameters, skipping
// empty ones.
func joinTokens[S ~string](tokens []S) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token != "" {
			parts = append(parts, string(token))
		}
	}
	return strings.Join(parts, ",")
}

// selectorParam is one member of an endpoint's mutually exclusive filter
// group. Slices of selectorParam are built in declaration order so error
// messages list parameters deterministically.
type selectorParam struct {
	name string
	set  bool
}

func setSelectors(selectors []selectorParam) []string {
	var names []string
	for _, s := range selectors {
		if s.set {
			names = append(names, s.name)
		}
	}
	return names
}

func selectorNames(selectors []selectorParam) []string {
	names := make([]string, len(selectors))
	for i, s := range selectors {
		names[i] = s.name
	}
	return names
}

func clampInt(value, low, high int64) int64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
