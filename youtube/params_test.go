package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryParamsSkipsEmptyValues(t *testing.T) {
	q := newQueryParams()
	q.set("q", "golang")
	q.set("pageToken", "")
	q.setBool("mine", nil)
	q.setInt("maxResults", nil)
	q.setTime("publishedAfter", time.Time{})

	assert.Equal(t, "golang", q.values.Get("q"))
	assert.NotContains(t, q.values, "pageToken")
	assert.NotContains(t, q.values, "mine")
	assert.NotContains(t, q.values, "maxResults")
	assert.NotContains(t, q.values, "publishedAfter")
}

func TestQueryParamsFormatsValues(t *testing.T) {
	q := newQueryParams()
	mine := true
	q.setBool("mine", &mine)
	maxResults := int64(25)
	q.setInt("maxResults", &maxResults)
	loc := time.FixedZone("CET", 3600)
	q.setTime("publishedAfter", time.Date(2024, 3, 1, 13, 30, 0, 0, loc))

	assert.Equal(t, "true", q.values.Get("mine"))
	assert.Equal(t, "25", q.values.Get("maxResults"))
	assert.Equal(t, "2024-03-01T12:30:00Z", q.values.Get("publishedAfter"))
}

func TestJoinTokens(t *testing.T) {
	assert.Equal(t, "id,snippet", joinTokens([]ChannelPart{ChannelPartID, ChannelPartSnippet}))
	assert.Equal(t, "video", joinTokens([]ResourceType{"", ResourceTypeVideo}))
	assert.Equal(t, "", joinTokens([]SearchPart(nil)))
}

func TestSelectorHelpers(t *testing.T) {
	selectors := []selectorParam{
		{"forUsername", false},
		{"id", true},
		{"managedByMe", false},
		{"mine", true},
	}

	assert.Equal(t, []string{"id", "mine"}, setSelectors(selectors))
	assert.Equal(t, []string{"forUsername", "id", "managedByMe", "mine"}, selectorNames(selectors))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, int64(72), clampInt(10, 72, 8192))
	assert.Equal(t, int64(8192), clampInt(10000, 72, 8192))
	assert.Equal(t, int64(720), clampInt(720, 72, 8192))
}
