package youtube

import "encoding/json"

// ListResponse is the envelope every list endpoint returns: one page of
// item resources plus pagination metadata. The number of items never
// exceeds PageInfo.ResultsPerPage.
type ListResponse[T any] struct {
	// Kind identifies the API resource's type.
	Kind string `json:"kind"`

	// Etag is the ETag of the response.
	Etag string `json:"etag"`

	// NextPageToken can be used as the pageToken parameter value to
	// retrieve the next page in the result set.
	NextPageToken string `json:"nextPageToken,omitempty"`

	// PrevPageToken can be used as the pageToken parameter value to
	// retrieve the previous page in the result set.
	PrevPageToken string `json:"prevPageToken,omitempty"`

	// RegionCode is the two-letter ISO country code the query was
	// evaluated for. Only populated by the search endpoint.
	RegionCode string `json:"regionCode,omitempty"`

	PageInfo PageInfo `json:"pageInfo"`

	// Items holds the results that match the request criteria.
	Items []T `json:"items"`
}

// listEnvelope tolerates the snake_case spellings some responses carry
// for the envelope metadata. Unknown incoming fields are ignored either
// way.
type listEnvelope[T any] struct {
	Kind               string    `json:"kind"`
	Etag               string    `json:"etag"`
	NextPageToken      string    `json:"nextPageToken"`
	NextPageTokenSnake string    `json:"next_page_token"`
	PrevPageToken      string    `json:"prevPageToken"`
	PrevPageTokenSnake string    `json:"prev_page_token"`
	RegionCode         string    `json:"regionCode"`
	RegionCodeSnake    string    `json:"region_code"`
	PageInfo           *PageInfo `json:"pageInfo"`
	PageInfoSnake      *PageInfo `json:"page_info"`
	Items              []T       `json:"items"`
}

// UnmarshalJSON accepts both the documented camelCase field names and
// their snake_case aliases.
func (r *ListResponse[T]) UnmarshalJSON(data []byte) error {
	var env listEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	r.Kind = env.Kind
	r.Etag = env.Etag
	r.NextPageToken = firstNonEmpty(env.NextPageToken, env.NextPageTokenSnake)
	r.PrevPageToken = firstNonEmpty(env.PrevPageToken, env.PrevPageTokenSnake)
	r.RegionCode = firstNonEmpty(env.RegionCode, env.RegionCodeSnake)
	if env.PageInfo != nil {
		r.PageInfo = *env.PageInfo
	} else if env.PageInfoSnake != nil {
		r.PageInfo = *env.PageInfoSnake
	}
	r.Items = env.Items
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// PageInfo encapsulates paging information for the result set.
type PageInfo struct {
	// TotalResults approximates the total number of results matching the
	// request. The upstream caps the value at 1,000,000.
	TotalResults int64 `json:"totalResults"`

	// ResultsPerPage is the number of results included in the response.
	ResultsPerPage int64 `json:"resultsPerPage"`
}

// UnmarshalJSON accepts both the documented camelCase field names and
// their snake_case aliases.
func (p *PageInfo) UnmarshalJSON(data []byte) error {
	var aux struct {
		TotalResults        *int64 `json:"totalResults"`
		TotalResultsSnake   *int64 `json:"total_results"`
		ResultsPerPage      *int64 `json:"resultsPerPage"`
		ResultsPerPageSnake *int64 `json:"results_per_page"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.TotalResults != nil:
		p.TotalResults = *aux.TotalResults
	case aux.TotalResultsSnake != nil:
		p.TotalResults = *aux.TotalResultsSnake
	}
	switch {
	case aux.ResultsPerPage != nil:
		p.ResultsPerPage = *aux.ResultsPerPage
	case aux.ResultsPerPageSnake != nil:
		p.ResultsPerPage = *aux.ResultsPerPageSnake
	}
	return nil
}

// ThumbnailQuality names one entry in a resource's thumbnail set.
type ThumbnailQuality string

const (
	// ThumbnailDefault is 120x90 for videos and 88x88 for channels.
	ThumbnailDefault ThumbnailQuality = "default"

	// ThumbnailMedium is 320x180 for videos and 240x240 for channels.
	ThumbnailMedium ThumbnailQuality = "medium"

	// ThumbnailHigh is 480x360 for videos and 800x800 for channels.
	ThumbnailHigh ThumbnailQuality = "high"

	// ThumbnailStandard is 640x480; only available for some videos.
	ThumbnailStandard ThumbnailQuality = "standard"

	// ThumbnailMaxres is 1280x720; only available for some videos.
	ThumbnailMaxres ThumbnailQuality = "maxres"
)

// Thumbnail is a single thumbnail image. Width and height are zero when
// the upstream omits them.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int64  `json:"width,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// Localization is a localized title and description pair.
type Localization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
