package youtube

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// maxIDsPerRequest is the upstream cap on comma-joined video IDs per
	// videos.list call.
	maxIDsPerRequest = 50

	// fetchConcurrency limits how many pages are fetched at once.
	fetchConcurrency = 4
)

// VideosByID fetches any number of videos by ID, batching the list into
// requests of up to 50 IDs and fetching the batches concurrently. The
// returned videos preserve the order of ids. IDs the API does not know
// are silently absent from the result.
func (c *Client) VideosByID(ctx context.Context, parts []VideoPart, ids []string) ([]Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	batches := make([][]string, 0, (len(ids)+maxIDsPerRequest-1)/maxIDsPerRequest)
	for i := 0; i < len(ids); i += maxIDsPerRequest {
		end := min(i+maxIDsPerRequest, len(ids))
		batches = append(batches, ids[i:end])
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	results := make([][]Video, len(batches))
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			response, err := c.VideoList(parts...).ID(batch...).Do(ctx)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int("batch", i).
					Int("ids", len(batch)).
					Msg("Failed to fetch video batch")
				return err
			}
			results[i] = response.Items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(ids))
	for _, items := range results {
		videos = append(videos, items...)
	}
	return videos, nil
}
