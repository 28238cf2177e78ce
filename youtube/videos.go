package youtube

import (
	"context"
	"net/url"
)

// VideoListCall builds a videos.list request. Exactly one of the filter
// parameters (chart, id, myRating) must be set before Do.
//
// Details: https://developers.google.com/youtube/v3/docs/videos/list
type VideoListCall struct {
	client *Client

	// required parameters
	parts []VideoPart

	// filters (specify exactly one)
	chart    Chart
	ids      []string
	idSet    bool
	myRating Rating

	// optional parameters
	hl                     string
	maxHeight              *int64
	maxResults             *int64
	maxWidth               *int64
	onBehalfOfContentOwner string
	pageToken              string
	regionCode             string
	videoCategoryID        string
}

// Parts replaces the part list set at construction.
func (c *VideoListCall) Parts(parts ...VideoPart) *VideoListCall {
	c.parts = parts
	return c
}

// Chart selects the chart to retrieve.
func (c *VideoListCall) Chart(chart Chart) *VideoListCall {
	c.chart = chart
	return c
}

// ID selects videos by ID. Setting an empty list is a validation error,
// distinct from never calling ID.
func (c *VideoListCall) ID(ids ...string) *VideoListCall {
	c.ids = ids
	c.idSet = true
	return c
}

// MyRating selects videos the authenticated user rated. This client is
// unauthenticated, so setting it always fails validation.
func (c *VideoListCall) MyRating(rating Rating) *VideoListCall {
	c.myRating = rating
	return c
}

// HL asks for localized resource metadata in the given application
// language.
func (c *VideoListCall) HL(hl string) *VideoListCall {
	c.hl = hl
	return c
}

// MaxHeight sets the maximum embedded-player height. Values outside
// [72, 4320] are clamped into range.
func (c *VideoListCall) MaxHeight(maxHeight int64) *VideoListCall {
	clamped := clampInt(maxHeight, 72, 4320)
	c.maxHeight = &clamped
	return c
}

// MaxResults sets the page size. Values above 50 are clamped to 50.
func (c *VideoListCall) MaxResults(maxResults int64) *VideoListCall {
	clamped := clampInt(maxResults, 0, 50)
	c.maxResults = &clamped
	return c
}

// MaxWidth sets the maximum embedded-player width. Values outside
// [72, 8192] are clamped into range.
func (c *VideoListCall) MaxWidth(maxWidth int64) *VideoListCall {
	clamped := clampInt(maxWidth, 72, 8192)
	c.maxWidth = &clamped
	return c
}

// OnBehalfOfContentOwner is reserved for YouTube content partners and
// always fails validation for this client.
func (c *VideoListCall) OnBehalfOfContentOwner(owner string) *VideoListCall {
	c.onBehalfOfContentOwner = owner
	return c
}

// PageToken selects a specific result page.
func (c *VideoListCall) PageToken(pageToken string) *VideoListCall {
	c.pageToken = pageToken
	return c
}

// RegionCode selects the region a chart is computed for.
func (c *VideoListCall) RegionCode(regionCode string) *VideoListCall {
	c.regionCode = regionCode
	return c
}

// VideoCategoryID narrows a chart to a video category. Only emitted
// together with Chart.
func (c *VideoListCall) VideoCategoryID(videoCategoryID string) *VideoListCall {
	c.videoCategoryID = videoCategoryID
	return c
}

// params validates the parameter combination and produces the outgoing
// query. It never mutates the call, so repeated invocations are
// deterministic.
func (c *VideoListCall) params() (url.Values, error) {
	q := newQueryParams()
	q.set("key", c.client.apiKey)
	q.set("part", joinTokens(c.parts))

	selectors := []selectorParam{
		{"chart", c.chart != ""},
		{"id", c.idSet},
		{"myRating", c.myRating != ""},
	}
	switch conflicting := setSelectors(selectors); len(conflicting) {
	case 0:
		return nil, missingRequiredFilter(selectorNames(selectors))
	case 1:
	default:
		return nil, incompatibleParameters(conflicting)
	}

	if c.myRating != "" {
		return nil, authorizationRequired("myRating")
	}
	if c.onBehalfOfContentOwner != "" {
		return nil, authorizationRequired("onBehalfOfContentOwner")
	}

	if c.chart != "" {
		q.set("chart", string(c.chart))
		q.set("videoCategoryId", c.videoCategoryID)
	}
	if c.idSet {
		if len(c.ids) == 0 {
			return nil, invalidParameter("parameter `id` must contain at least one video id")
		}
		q.set("id", joinTokens(c.ids))
	}

	q.set("hl", c.hl)
	q.setInt("maxHeight", c.maxHeight)
	q.setInt("maxResults", c.maxResults)
	q.setInt("maxWidth", c.maxWidth)
	q.set("pageToken", c.pageToken)
	q.set("regionCode", c.regionCode)

	return q.values, nil
}

// Do validates the configured parameters and executes the request.
func (c *VideoListCall) Do(ctx context.Context) (*ListResponse[Video], error) {
	params, err := c.params()
	if err != nil {
		return nil, err
	}
	return doList[Video](ctx, c.client, "videos", params)
}
