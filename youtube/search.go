package youtube

import (
	"context"
	"net/url"
	"time"
)

// SearchListCall builds a search.list request. The scope filters
// (forContentOwner, forDeveloper, forMine) are mutually exclusive but all
// optional.
//
// Details: https://developers.google.com/youtube/v3/docs/search/list
type SearchListCall struct {
	client *Client

	// required parameters
	parts []SearchPart

	// filters (specify zero or one)
	forContentOwner *bool
	forDeveloper    *bool
	forMine         *bool

	// optional parameters
	channelID              string
	channelType            ChannelType
	eventType              EventType
	location               string
	locationRadius         string
	maxResults             *int64
	onBehalfOfContentOwner string
	order                  SearchOrder
	pageToken              string
	publishedAfter         time.Time
	publishedBefore        time.Time
	q                      string
	regionCode             string
	relevanceLanguage      string
	safeSearch             SafeSearch
	topicID                string
	resourceTypes          []ResourceType
	videoCaption           VideoCaption
	videoCategoryID        string
	videoDefinition        VideoDefinition
	videoDimension         VideoDimension
	videoDuration          VideoDuration
	videoEmbeddable        VideoEmbeddable
	videoLicense           VideoLicense
	videoPaidPlacement     VideoPaidProductPlacement
	videoSyndicated        VideoSyndicated
	videoType              VideoType
}

// Parts replaces the part list set at construction.
func (c *SearchListCall) Parts(parts ...SearchPart) *SearchListCall {
	c.parts = parts
	return c
}

// ForContentOwner restricts results to the content owner's videos.
// Requires authorization this client does not possess.
func (c *SearchListCall) ForContentOwner(forContentOwner bool) *SearchListCall {
	c.forContentOwner = &forContentOwner
	return c
}

// ForDeveloper restricts results to videos uploaded through the
// developer's application. Requires authorization this client does not
// possess.
func (c *SearchListCall) ForDeveloper(forDeveloper bool) *SearchListCall {
	c.forDeveloper = &forDeveloper
	return c
}

// ForMine restricts results to the authenticated user's videos.
// Requires authorization this client does not possess.
func (c *SearchListCall) ForMine(forMine bool) *SearchListCall {
	c.forMine = &forMine
	return c
}

// ChannelID restricts results to resources created by the channel.
func (c *SearchListCall) ChannelID(channelID string) *SearchListCall {
	c.channelID = channelID
	return c
}

// ChannelType restricts a search to a particular type of channel.
func (c *SearchListCall) ChannelType(channelType ChannelType) *SearchListCall {
	c.channelType = channelType
	return c
}

// EventType restricts a search to broadcast events. Requires the
// resource type filter to be exactly video.
func (c *SearchListCall) EventType(eventType EventType) *SearchListCall {
	c.eventType = eventType
	return c
}

// Location, together with LocationRadius, restricts results to videos
// with a geographic location inside a circular area. Requires the
// resource type filter to be exactly video.
func (c *SearchListCall) Location(location string) *SearchListCall {
	c.location = location
	return c
}

// LocationRadius sets the radius of the circular geographic area, e.g.
// "5km". Must be used together with Location.
func (c *SearchListCall) LocationRadius(locationRadius string) *SearchListCall {
	c.locationRadius = locationRadius
	return c
}

// MaxResults sets the page size. Values above 50 are clamped to 50.
func (c *SearchListCall) MaxResults(maxResults int64) *SearchListCall {
	clamped := clampInt(maxResults, 0, 50)
	c.maxResults = &clamped
	return c
}

// OnBehalfOfContentOwner is reserved for YouTube content partners and
// always fails validation for this client.
func (c *SearchListCall) OnBehalfOfContentOwner(owner string) *SearchListCall {
	c.onBehalfOfContentOwner = owner
	return c
}

// Order sets the result ordering. The upstream default is relevance.
func (c *SearchListCall) Order(order SearchOrder) *SearchListCall {
	c.order = order
	return c
}

// PageToken selects a specific result page.
func (c *SearchListCall) PageToken(pageToken string) *SearchListCall {
	c.pageToken = pageToken
	return c
}

// PublishedAfter restricts results to resources created at or after the
// given time.
func (c *SearchListCall) PublishedAfter(publishedAfter time.Time) *SearchListCall {
	c.publishedAfter = publishedAfter
	return c
}

// PublishedBefore restricts results to resources created before the
// given time.
func (c *SearchListCall) PublishedBefore(publishedBefore time.Time) *SearchListCall {
	c.publishedBefore = publishedBefore
	return c
}

// Q sets the query term to search for.
func (c *SearchListCall) Q(q string) *SearchListCall {
	c.q = q
	return c
}

// RegionCode asks for results available in the given region (two-letter
// ISO country code).
func (c *SearchListCall) RegionCode(regionCode string) *SearchListCall {
	c.regionCode = regionCode
	return c
}

// RelevanceLanguage asks for results most relevant to the given language
// (ISO 639-1 code).
func (c *SearchListCall) RelevanceLanguage(relevanceLanguage string) *SearchListCall {
	c.relevanceLanguage = relevanceLanguage
	return c
}

// SafeSearch controls restricted-content filtering. The upstream default
// is moderate.
func (c *SearchListCall) SafeSearch(safeSearch SafeSearch) *SearchListCall {
	c.safeSearch = safeSearch
	return c
}

// TopicID restricts results to resources associated with the Freebase
// topic.
func (c *SearchListCall) TopicID(topicID string) *SearchListCall {
	c.topicID = topicID
	return c
}

// ResourceTypes restricts the search to particular resource types. The
// default is channel, playlist and video. Several other parameters are
// only legal when the list is exactly [video].
func (c *SearchListCall) ResourceTypes(resourceTypes ...ResourceType) *SearchListCall {
	c.resourceTypes = resourceTypes
	return c
}

// VideoCaption filters on caption availability. Requires the resource
// type filter to be exactly video.
func (c *SearchListCall) VideoCaption(videoCaption VideoCaption) *SearchListCall {
	c.videoCaption = videoCaption
	return c
}

// VideoCategoryID filters on video category. Requires the resource type
// filter to be exactly video.
func (c *SearchListCall) VideoCategoryID(videoCategoryID string) *SearchListCall {
	c.videoCategoryID = videoCategoryID
	return c
}

// VideoDefinition filters on video resolution. Requires the resource
// type filter to be exactly video.
func (c *SearchListCall) VideoDefinition(videoDefinition VideoDefinition) *SearchListCall {
	c.videoDefinition = videoDefinition
	return c
}

// VideoDimension filters on 2D/3D videos. Requires the resource type
// filter to be exactly video.
func (c *SearchListCall) VideoDimension(videoDimension VideoDimension) *SearchListCall {
	c.videoDimension = videoDimension
	return c
}

// VideoDuration filters on video length. Requires the resource type
// filter to be exactly video.
func (c *SearchListCall) VideoDuration(videoDuration VideoDuration) *SearchListCall {
	c.videoDuration = videoDuration
	return c
}

// VideoEmbeddable restricts results to embeddable videos. Requires the
// resource type filter to be exactly video.
func (c *SearchListCall) VideoEmbeddable(videoEmbeddable VideoEmbeddable) *SearchListCall {
	c.videoEmbeddable = videoEmbeddable
	return c
}

// VideoLicense filters on video license. Requires the resource type
// filter to be exactly video.
func (c *SearchListCall) VideoLicense(videoLicense VideoLicense) *SearchListCall {
	c.videoLicense = videoLicense
	return c
}

// VideoPaidProductPlacement restricts results to videos with paid
// product placements. Requires the resource type filter to be exactly
// video.
func (c *SearchListCall) VideoPaidProductPlacement(placement VideoPaidProductPlacement) *SearchListCall {
	c.videoPaidPlacement = placement
	return c
}

// VideoSyndicated restricts results to videos that can be played outside
// youtube.com. Requires the resource type filter to be exactly video.
func (c *SearchListCall) VideoSyndicated(videoSyndicated VideoSyndicated) *SearchListCall {
	c.videoSyndicated = videoSyndicated
	return c
}

// VideoType filters on the video type. Requires the resource type filter
// to be exactly video.
func (c *SearchListCall) VideoType(videoType VideoType) *SearchListCall {
	c.videoType = videoType
	return c
}

// params validates the parameter combination and produces the outgoing
// query. It never mutates the call, so repeated invocations are
// deterministic.
func (c *SearchListCall) params() (url.Values, error) {
	q := newQueryParams()
	q.set("key", c.client.apiKey)
	q.set("part", joinTokens(c.parts))

	videoTypeOnly := len(c.resourceTypes) == 1 && c.resourceTypes[0] == ResourceTypeVideo

	selectors := []selectorParam{
		{"forContentOwner", c.forContentOwner != nil},
		{"forDeveloper", c.forDeveloper != nil},
		{"forMine", c.forMine != nil},
	}
	// The scope filter is optional: only a conflict is an error.
	if conflicting := setSelectors(selectors); len(conflicting) > 1 {
		return nil, incompatibleParameters(conflicting)
	}
	if c.forContentOwner != nil {
		return nil, authorizationRequired("forContentOwner")
	}
	if c.forDeveloper != nil {
		return nil, authorizationRequired("forDeveloper")
	}
	if c.forMine != nil {
		return nil, authorizationRequired("forMine")
	}
	if c.onBehalfOfContentOwner != "" {
		return nil, authorizationRequired("onBehalfOfContentOwner")
	}

	q.set("channelId", c.channelID)
	q.set("channelType", string(c.channelType))
	if c.eventType != "" {
		if !videoTypeOnly {
			return nil, typeMustBeVideo("eventType")
		}
		q.set("eventType", string(c.eventType))
	}
	if c.location != "" {
		if !videoTypeOnly {
			return nil, typeMustBeVideo("location")
		}
		if c.locationRadius == "" {
			return nil, invalidParameter("parameter `locationRadius` must be specified when using `location`")
		}
		q.set("location", c.location)
	}
	if c.locationRadius != "" {
		if c.location == "" {
			return nil, invalidParameter("parameter `location` must be specified when using `locationRadius`")
		}
		q.set("locationRadius", c.locationRadius)
	}
	q.setInt("maxResults", c.maxResults)
	q.set("order", string(c.order))
	q.set("pageToken", c.pageToken)
	q.setTime("publishedAfter", c.publishedAfter)
	q.setTime("publishedBefore", c.publishedBefore)
	q.set("q", c.q)
	q.set("regionCode", c.regionCode)
	q.set("relevanceLanguage", c.relevanceLanguage)
	q.set("safeSearch", string(c.safeSearch))
	q.set("topicId", c.topicID)
	q.set("type", joinTokens(c.resourceTypes))

	videoOnlyParams := []struct {
		name  string
		value string
	}{
		{"videoCaption", string(c.videoCaption)},
		{"videoCategoryId", c.videoCategoryID},
		{"videoDefinition", string(c.videoDefinition)},
		{"videoDimension", string(c.videoDimension)},
		{"videoDuration", string(c.videoDuration)},
		{"videoEmbeddable", string(c.videoEmbeddable)},
		{"videoLicense", string(c.videoLicense)},
		{"videoPaidProductPlacement", string(c.videoPaidPlacement)},
		{"videoSyndicated", string(c.videoSyndicated)},
		{"videoType", string(c.videoType)},
	}
	for _, p := range videoOnlyParams {
		if p.value == "" {
			continue
		}
		if !videoTypeOnly {
			return nil, typeMustBeVideo(p.name)
		}
		q.set(p.name, p.value)
	}

	return q.values, nil
}

// Do validates the configured parameters and executes the request.
func (c *SearchListCall) Do(ctx context.Context) (*ListResponse[SearchResult], error) {
	params, err := c.params()
	if err != nil {
		return nil, err
	}
	return doList[SearchResult](ctx, c.client, "search", params)
}
