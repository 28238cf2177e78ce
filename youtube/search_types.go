package youtube

import "time"

// SearchPart selects which search result sub-objects are populated in
// the response.
type SearchPart string

const (
	SearchPartID      SearchPart = "id"
	SearchPartSnippet SearchPart = "snippet"
)

// ResourceType restricts a search to a particular type of resource.
type ResourceType string

const (
	ResourceTypeChannel  ResourceType = "channel"
	ResourceTypePlaylist ResourceType = "playlist"
	ResourceTypeVideo    ResourceType = "video"
)

// ChannelType restricts a search to a particular type of channel.
type ChannelType string

const (
	// ChannelTypeAny returns all channels.
	ChannelTypeAny ChannelType = "any"

	// ChannelTypeShow only retrieves shows.
	ChannelTypeShow ChannelType = "show"
)

// EventType restricts a search to broadcast events.
type EventType string

const (
	// EventTypeCompleted only includes completed broadcasts.
	EventTypeCompleted EventType = "completed"

	// EventTypeLive only includes active broadcasts.
	EventTypeLive EventType = "live"

	// EventTypeUpcoming only includes upcoming broadcasts.
	EventTypeUpcoming EventType = "upcoming"
)

// SearchOrder controls how search results are sorted.
type SearchOrder string

const (
	// OrderDate sorts in reverse chronological creation order.
	OrderDate SearchOrder = "date"

	// OrderRating sorts from highest to lowest rating.
	OrderRating SearchOrder = "rating"

	// OrderRelevance sorts by relevance to the query. Upstream default.
	OrderRelevance SearchOrder = "relevance"

	// OrderTitle sorts alphabetically by title.
	OrderTitle SearchOrder = "title"

	// OrderVideoCount sorts channels by descending uploaded video count.
	OrderVideoCount SearchOrder = "videoCount"

	// OrderViewCount sorts from highest to lowest number of views. Live
	// broadcasts are sorted by concurrent viewers while ongoing.
	OrderViewCount SearchOrder = "viewCount"
)

// SafeSearch controls whether restricted content is filtered from
// results.
type SafeSearch string

const (
	// SafeSearchModerate filters some content based on the locale.
	// Upstream default.
	SafeSearchModerate SafeSearch = "moderate"

	// SafeSearchNone disables result filtering.
	SafeSearchNone SafeSearch = "none"

	// SafeSearchStrict excludes all restricted content.
	SafeSearchStrict SafeSearch = "strict"
)

// VideoCaption filters results based on caption availability.
type VideoCaption string

const (
	VideoCaptionAny    VideoCaption = "any"
	VideoCaptionClosed VideoCaption = "closedCaption"
	VideoCaptionNone   VideoCaption = "none"
)

// VideoDefinition filters results based on video resolution.
type VideoDefinition string

const (
	VideoDefinitionAny      VideoDefinition = "any"
	VideoDefinitionHigh     VideoDefinition = "high"
	VideoDefinitionStandard VideoDefinition = "standard"
)

// VideoDimension filters results based on 2D or 3D video.
type VideoDimension string

const (
	VideoDimensionAny VideoDimension = "any"
	VideoDimension2D  VideoDimension = "2d"
	VideoDimension3D  VideoDimension = "3d"
)

// VideoDuration filters results based on video length.
type VideoDuration string

const (
	// VideoDurationAny does not filter on duration. Upstream default.
	VideoDurationAny VideoDuration = "any"

	// VideoDurationShort only includes videos under four minutes.
	VideoDurationShort VideoDuration = "short"

	// VideoDurationMedium only includes videos of four to twenty
	// minutes.
	VideoDurationMedium VideoDuration = "medium"

	// VideoDurationLong only includes videos over twenty minutes.
	VideoDurationLong VideoDuration = "long"
)

// VideoEmbeddable restricts results to videos embeddable on other sites.
type VideoEmbeddable string

const (
	VideoEmbeddableAny  VideoEmbeddable = "any"
	VideoEmbeddableTrue VideoEmbeddable = "true"
)

// VideoLicense filters results based on video license.
type VideoLicense string

const (
	VideoLicenseAny            VideoLicense = "any"
	VideoLicenseCreativeCommon VideoLicense = "creativeCommon"
	VideoLicenseYouTube        VideoLicense = "youtube"
)

// VideoPaidProductPlacement restricts results to videos with paid
// product placements.
type VideoPaidProductPlacement string

const (
	VideoPaidProductPlacementAny  VideoPaidProductPlacement = "any"
	VideoPaidProductPlacementTrue VideoPaidProductPlacement = "true"
)

// VideoSyndicated restricts results to videos that can be played outside
// youtube.com.
type VideoSyndicated string

const (
	VideoSyndicatedAny  VideoSyndicated = "any"
	VideoSyndicatedTrue VideoSyndicated = "true"
)

// VideoType filters results based on the type of video.
type VideoType string

const (
	VideoTypeAny     VideoType = "any"
	VideoTypeEpisode VideoType = "episode"
	VideoTypeMovie   VideoType = "movie"
)

// SearchResult is a search.list resource. The value of Kind is
// "youtube#searchResult".
type SearchResult struct {
	Kind string `json:"kind"`
	Etag string `json:"etag"`

	ID ResourceID `json:"id"`

	Snippet *SearchSnippet `json:"snippet,omitempty"`
}

// ResourceID uniquely identifies the resource a search result refers to.
// Exactly one of the ID fields is populated, according to Kind.
type ResourceID struct {
	// Kind is the type of the referenced resource, e.g.
	// "youtube#video".
	Kind string `json:"kind"`

	VideoID    string `json:"videoId,omitempty"`
	ChannelID  string `json:"channelId,omitempty"`
	PlaylistID string `json:"playlistId,omitempty"`
}

// SearchSnippet carries basic details about a search result: for a video
// result, the video's title and description.
type SearchSnippet struct {
	// PublishedAt is the creation time of the referenced resource.
	PublishedAt time.Time `json:"publishedAt"`

	// ChannelID identifies the channel that published the resource.
	ChannelID string `json:"channelId"`

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Thumbnails maps each available quality level to an image.
	Thumbnails map[ThumbnailQuality]Thumbnail `json:"thumbnails"`

	// ChannelTitle is the title of the publishing channel.
	ChannelTitle string `json:"channelTitle"`

	// LiveBroadcastContent is "upcoming", "live" or "none".
	LiveBroadcastContent string `json:"liveBroadcastContent,omitempty"`
}
