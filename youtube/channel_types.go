package youtube

import "time"

// ChannelPart selects which channel sub-objects are populated in the
// response.
type ChannelPart string

const (
	ChannelPartAuditDetails        ChannelPart = "auditDetails"
	ChannelPartBrandingSettings    ChannelPart = "brandingSettings"
	ChannelPartContentDetails      ChannelPart = "contentDetails"
	ChannelPartContentOwnerDetails ChannelPart = "contentOwnerDetails"
	ChannelPartID                  ChannelPart = "id"
	ChannelPartLocalizations       ChannelPart = "localizations"
	ChannelPartSnippet             ChannelPart = "snippet"
	ChannelPartStatistics          ChannelPart = "statistics"
	ChannelPartStatus              ChannelPart = "status"
	ChannelPartTopicDetails        ChannelPart = "topicDetails"
)

// Channel is a channels.list resource. The value of Kind is
// "youtube#channel".
type Channel struct {
	Kind string `json:"kind"`
	Etag string `json:"etag"`

	// ID is the ID that YouTube uses to uniquely identify the channel.
	ID string `json:"id"`

	Snippet    *ChannelSnippet    `json:"snippet,omitempty"`
	Statistics *ChannelStatistics `json:"statistics,omitempty"`
}

// ChannelSnippet carries the channel's basic metadata.
type ChannelSnippet struct {
	// Title is the channel's title.
	Title string `json:"title"`

	// Description has a maximum length of 1000 characters.
	Description string `json:"description"`

	// CustomURL is the channel's custom URL, when one is configured.
	CustomURL string `json:"customUrl,omitempty"`

	// PublishedAt is the date and time that the channel was created.
	PublishedAt time.Time `json:"publishedAt"`

	// Thumbnails maps each available quality level to an image.
	// Thumbnails might be empty for newly created channels and can take
	// up to a day to populate.
	Thumbnails map[ThumbnailQuality]Thumbnail `json:"thumbnails"`

	// DefaultLanguage is the language of Title and Description.
	DefaultLanguage string `json:"defaultLanguage,omitempty"`

	// Localized holds the localized, or default-language, title and
	// description selected by the hl parameter.
	Localized *Localization `json:"localized,omitempty"`

	// Country is the country the channel is associated with.
	Country string `json:"country,omitempty"`
}

// ChannelStatistics carries the channel's aggregate counters. The
// upstream serializes the counts as strings.
type ChannelStatistics struct {
	ViewCount  uint64 `json:"viewCount,string,omitempty"`
	VideoCount uint64 `json:"videoCount,string,omitempty"`

	// SubscriberCount is rounded down to three significant figures by
	// the upstream.
	SubscriberCount uint64 `json:"subscriberCount,string,omitempty"`

	// HiddenSubscriberCount reports whether the subscriber count is
	// publicly visible.
	HiddenSubscriberCount bool `json:"hiddenSubscriberCount,omitempty"`
}
