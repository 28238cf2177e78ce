package youtube

import "time"

// VideoPart selects which video sub-objects are populated in the
// response.
type VideoPart string

const (
	VideoPartContentDetails       VideoPart = "contentDetails"
	VideoPartFileDetails          VideoPart = "fileDetails"
	VideoPartID                   VideoPart = "id"
	VideoPartLiveStreamingDetails VideoPart = "liveStreamingDetails"
	VideoPartLocalizations        VideoPart = "localizations"
	VideoPartPlayer               VideoPart = "player"
	VideoPartProcessingDetails    VideoPart = "processingDetails"
	VideoPartRecordingDetails     VideoPart = "recordingDetails"
	VideoPartSnippet              VideoPart = "snippet"
	VideoPartStatistics           VideoPart = "statistics"
	VideoPartStatus               VideoPart = "status"
	VideoPartSuggestions          VideoPart = "suggestions"
	VideoPartTopicDetails         VideoPart = "topicDetails"
)

// Chart identifies a video chart.
type Chart string

// ChartMostPopular returns the most popular videos for the selected
// region and video category.
const ChartMostPopular Chart = "mostPopular"

// Rating filters videos by the authenticated user's rating.
type Rating string

const (
	// RatingLike returns only videos liked by the authenticated user.
	RatingLike Rating = "like"

	// RatingDislike returns only videos disliked by the authenticated
	// user.
	RatingDislike Rating = "dislike"
)

// Video is a videos.list resource. The value of Kind is
// "youtube#video".
type Video struct {
	Kind string `json:"kind"`
	Etag string `json:"etag"`

	// ID is the ID that YouTube uses to uniquely identify the video.
	ID string `json:"id"`

	Snippet              *VideoSnippet              `json:"snippet,omitempty"`
	Statistics           *VideoStatistics           `json:"statistics,omitempty"`
	Status               *VideoStatus               `json:"status,omitempty"`
	Player               *VideoPlayer               `json:"player,omitempty"`
	LiveStreamingDetails *VideoLiveStreamingDetails `json:"liveStreamingDetails,omitempty"`
}

// VideoSnippet carries basic details about the video, such as its title,
// description and category.
type VideoSnippet struct {
	// PublishedAt is the time the video was published, which can differ
	// from the upload time for videos that started out private.
	PublishedAt time.Time `json:"publishedAt"`

	// ChannelID identifies the channel the video was uploaded to.
	ChannelID string `json:"channelId"`

	// Title has a maximum length of 100 characters.
	Title string `json:"title"`

	// Description has a maximum length of 5000 bytes.
	Description string `json:"description"`

	// Thumbnails maps each available quality level to an image.
	Thumbnails map[ThumbnailQuality]Thumbnail `json:"thumbnails"`

	// ChannelTitle is the title of the owning channel.
	ChannelTitle string `json:"channelTitle"`

	// Tags lists the keyword tags associated with the video.
	Tags []string `json:"tags,omitempty"`

	// CategoryID is the YouTube video category associated with the
	// video.
	CategoryID string `json:"categoryId,omitempty"`

	// LiveBroadcastContent is "upcoming", "live" or "none".
	LiveBroadcastContent string `json:"liveBroadcastContent,omitempty"`

	// DefaultLanguage is the language of Title and Description.
	DefaultLanguage string `json:"defaultLanguage,omitempty"`

	// Localized holds the localized, or default-language, title and
	// description selected by the hl parameter.
	Localized *Localization `json:"localized,omitempty"`

	// DefaultAudioLanguage is the language of the default audio track.
	DefaultAudioLanguage string `json:"defaultAudioLanguage,omitempty"`
}

// VideoStatistics carries the video's counters. The upstream serializes
// the counts as strings.
type VideoStatistics struct {
	ViewCount uint64 `json:"viewCount,string,omitempty"`
	LikeCount uint64 `json:"likeCount,string,omitempty"`

	// DislikeCount is only populated when the request was authenticated
	// by the video owner.
	DislikeCount uint64 `json:"dislikeCount,string,omitempty"`

	// FavoriteCount is deprecated upstream and always zero.
	FavoriteCount uint64 `json:"favoriteCount,string,omitempty"`

	CommentCount uint64 `json:"commentCount,string,omitempty"`
}

// VideoStatus carries the video's uploading, processing and privacy
// statuses.
type VideoStatus struct {
	// UploadStatus is one of deleted, failed, processed, rejected or
	// uploaded.
	UploadStatus string `json:"uploadStatus"`

	// FailureReason is only present when UploadStatus is failed.
	FailureReason string `json:"failureReason,omitempty"`

	// RejectionReason is only present when UploadStatus is rejected.
	RejectionReason string `json:"rejectionReason,omitempty"`

	// PrivacyStatus is one of private, public or unlisted.
	PrivacyStatus string `json:"privacyStatus,omitempty"`

	// PublishAt is the scheduled publish time for private videos.
	PublishAt *time.Time `json:"publishAt,omitempty"`

	// License is creativeCommon or youtube.
	License string `json:"license,omitempty"`

	// Embeddable reports whether the video can be embedded on another
	// website.
	Embeddable bool `json:"embeddable,omitempty"`

	// PublicStatsViewable reports whether the extended statistics on
	// the watch page are publicly viewable.
	PublicStatsViewable bool `json:"publicStatsViewable,omitempty"`

	// MadeForKids holds the current "made for kids" status of the
	// video.
	MadeForKids bool `json:"madeForKids,omitempty"`

	// SelfDeclaredMadeForKids is only returned to the channel owner.
	SelfDeclaredMadeForKids *bool `json:"selfDeclaredMadeForKids,omitempty"`
}

// VideoPlayer carries the information needed to play the video in an
// embedded player.
type VideoPlayer struct {
	EmbedHTML   string `json:"embedHtml,omitempty"`
	EmbedHeight int64  `json:"embedHeight,omitempty"`
	EmbedWidth  int64  `json:"embedWidth,omitempty"`
}

// VideoLiveStreamingDetails is only present for upcoming, live or
// completed broadcasts.
type VideoLiveStreamingDetails struct {
	// ActualStartTime is unavailable until the broadcast begins.
	ActualStartTime *time.Time `json:"actualStartTime,omitempty"`

	// ActualEndTime is unavailable until the broadcast is over.
	ActualEndTime *time.Time `json:"actualEndTime,omitempty"`

	// ScheduledStartTime is the time the broadcast is scheduled to
	// begin.
	ScheduledStartTime time.Time `json:"scheduledStartTime"`

	// ScheduledEndTime is absent for broadcasts scheduled to continue
	// indefinitely.
	ScheduledEndTime *time.Time `json:"scheduledEndTime,omitempty"`

	// ConcurrentViewers is only present while the broadcast is live and
	// the owner has not hidden the view count.
	ConcurrentViewers uint64 `json:"concurrentViewers,string,omitempty"`

	// ActiveLiveChatID is only present for live broadcasts with live
	// chat.
	ActiveLiveChatID string `json:"activeLiveChatId,omitempty"`
}
