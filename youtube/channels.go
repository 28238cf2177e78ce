package youtube

import (
	"context"
	"net/url"
)

// ChannelListCall builds a channels.list request. Exactly one of the
// filter parameters (forUsername, id, managedByMe, mine) must be set
// before Do.
//
// Details: https://developers.google.com/youtube/v3/docs/channels/list
type ChannelListCall struct {
	client *Client

	// required parameters
	parts []ChannelPart

	// filters (specify exactly one)
	forUsername string
	id          string
	managedByMe *bool
	mine        *bool

	// optional parameters
	hl                     string
	maxResults             *int64
	onBehalfOfContentOwner string
	pageToken              string
}

// Parts replaces the part list set at construction.
func (c *ChannelListCall) Parts(parts ...ChannelPart) *ChannelListCall {
	c.parts = parts
	return c
}

// ForUsername selects the channel with the given YouTube username.
func (c *ChannelListCall) ForUsername(username string) *ChannelListCall {
	c.forUsername = username
	return c
}

// ID selects channels by a comma-separated list of channel IDs.
func (c *ChannelListCall) ID(id string) *ChannelListCall {
	c.id = id
	return c
}

// ManagedByMe selects channels managed by the authenticated content
// owner. This client is unauthenticated, so setting it always fails
// validation.
func (c *ChannelListCall) ManagedByMe(managedByMe bool) *ChannelListCall {
	c.managedByMe = &managedByMe
	return c
}

// Mine selects the authenticated user's channel. This client is
// unauthenticated, so setting it always fails validation.
func (c *ChannelListCall) Mine(mine bool) *ChannelListCall {
	c.mine = &mine
	return c
}

// HL asks for localized resource metadata in the given application
// language.
func (c *ChannelListCall) HL(hl string) *ChannelListCall {
	c.hl = hl
	return c
}

// MaxResults sets the page size. Values above 50 are clamped to 50.
func (c *ChannelListCall) MaxResults(maxResults int64) *ChannelListCall {
	clamped := clampInt(maxResults, 0, 50)
	c.maxResults = &clamped
	return c
}

// OnBehalfOfContentOwner is reserved for YouTube content partners and
// always fails validation for this client.
func (c *ChannelListCall) OnBehalfOfContentOwner(owner string) *ChannelListCall {
	c.onBehalfOfContentOwner = owner
	return c
}

// PageToken selects a specific result page.
func (c *ChannelListCall) PageToken(pageToken string) *ChannelListCall {
	c.pageToken = pageToken
	return c
}

// params validates the parameter combination and produces the outgoing
// query. It never mutates the call, so repeated invocations are
// deterministic.
func (c *ChannelListCall) params() (url.Values, error) {
	q := newQueryParams()
	q.set("key", c.client.apiKey)
	q.set("part", joinTokens(c.parts))

	selectors := []selectorParam{
		{"forUsername", c.forUsername != ""},
		{"id", c.id != ""},
		{"managedByMe", c.managedByMe != nil},
		{"mine", c.mine != nil},
	}
	switch conflicting := setSelectors(selectors); len(conflicting) {
	case 0:
		return nil, missingRequiredFilter(selectorNames(selectors))
	case 1:
	default:
		return nil, incompatibleParameters(conflicting)
	}

	if c.managedByMe != nil {
		return nil, authorizationRequired("managedByMe")
	}
	if c.mine != nil {
		return nil, authorizationRequired("mine")
	}
	if c.onBehalfOfContentOwner != "" {
		return nil, authorizationRequired("onBehalfOfContentOwner")
	}

	q.set("forUsername", c.forUsername)
	q.set("id", c.id)
	q.set("hl", c.hl)
	q.setInt("maxResults", c.maxResults)
	q.set("pageToken", c.pageToken)

	return q.values, nil
}

// Do validates the configured parameters and executes the request.
func (c *ChannelListCall) Do(ctx context.Context) (*ListResponse[Channel], error) {
	params, err := c.params()
	if err != nil {
		return nil, err
	}
	return doList[Channel](ctx, c.client, "channels", params)
}
