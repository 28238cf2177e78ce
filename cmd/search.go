package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytdata-go/ytdata/filter"
	"github.com/ytdata-go/ytdata/youtube"
)

var (
	searchType      string
	searchChannelID string
	searchOrder     string
	searchRegion    string
	searchSafe      string
	searchDuration  string
	searchAfter     string
	searchBefore    string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search YouTube for videos, channels and playlists",
	Long: `Search YouTube for resources matching a query. Results can be
narrowed with API-side parameters and further filtered locally with an
expression, e.g.:

  ytdata search "go generics" --type video --order viewCount
  ytdata search golang --filter 'PublishedAt > daysAgo(30)'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "restrict to a resource type (video, channel, playlist)")
	searchCmd.Flags().StringVar(&searchChannelID, "channel-id", "", "restrict to one channel")
	searchCmd.Flags().StringVar(&searchOrder, "order", "", "result order (date, rating, relevance, title, videoCount, viewCount)")
	searchCmd.Flags().StringVar(&searchRegion, "region", "", "two-letter region code")
	searchCmd.Flags().StringVar(&searchSafe, "safe-search", "", "restricted-content filtering (moderate, none, strict)")
	searchCmd.Flags().StringVar(&searchDuration, "duration", "", "video duration bucket (short, medium, long); implies --type video")
	searchCmd.Flags().StringVar(&searchAfter, "published-after", "", "only resources published after this date (2006-01-02)")
	searchCmd.Flags().StringVar(&searchBefore, "published-before", "", "only resources published before this date (2006-01-02)")
	searchCmd.Flags().Int64VarP(&maxResults, "max-results", "n", 25, "page size (1-50)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var resultFilter *filter.Filter
	if expression != "" {
		resultFilter, err = filter.Compile(expression)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", expression).Msg("Applying result filter")
	}

	call := client.SearchList(youtube.SearchPartSnippet).
		Q(args[0]).
		MaxResults(maxResults)

	if searchType != "" {
		call.ResourceTypes(youtube.ResourceType(searchType))
	}
	if searchDuration != "" {
		call.ResourceTypes(youtube.ResourceTypeVideo).
			VideoDuration(youtube.VideoDuration(searchDuration))
	}
	if searchChannelID != "" {
		call.ChannelID(searchChannelID)
	}
	if searchOrder != "" {
		call.Order(youtube.SearchOrder(searchOrder))
	}
	if searchRegion != "" {
		call.RegionCode(searchRegion)
	}
	if searchSafe != "" {
		call.SafeSearch(youtube.SafeSearch(searchSafe))
	}
	if searchAfter != "" {
		after, err := time.Parse("2006-01-02", searchAfter)
		if err != nil {
			return fmt.Errorf("invalid --published-after date: %w", err)
		}
		call.PublishedAfter(after)
	}
	if searchBefore != "" {
		before, err := time.Parse("2006-01-02", searchBefore)
		if err != nil {
			return fmt.Errorf("invalid --published-before date: %w", err)
		}
		call.PublishedBefore(before)
	}

	response, err := call.Do(context.Background())
	if err != nil {
		return err
	}

	results := filter.SearchResults(response.Items, resultFilter)
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("\nFound %d results (about %d total):\n", len(results), response.PageInfo.TotalResults)
	fmt.Println(strings.Repeat("-", 80))

	for _, result := range results {
		fmt.Printf("• %s\n", resultTitle(result))
		fmt.Printf("  %s\n", resultLocation(result))
		if result.Snippet != nil && !result.Snippet.PublishedAt.IsZero() {
			fmt.Printf("  Published: %s by %s\n",
				result.Snippet.PublishedAt.Format("2006-01-02"),
				result.Snippet.ChannelTitle)
		}
	}

	if response.NextPageToken != "" {
		fmt.Printf("\nNext page token: %s\n", response.NextPageToken)
	}

	return nil
}

func resultTitle(result youtube.SearchResult) string {
	if result.Snippet != nil && result.Snippet.Title != "" {
		return result.Snippet.Title
	}
	return "(untitled)"
}

func resultLocation(result youtube.SearchResult) string {
	switch {
	case result.ID.VideoID != "":
		return "https://www.youtube.com/watch?v=" + result.ID.VideoID
	case result.ID.ChannelID != "":
		return "https://www.youtube.com/channel/" + result.ID.ChannelID
	case result.ID.PlaylistID != "":
		return "https://www.youtube.com/playlist?list=" + result.ID.PlaylistID
	default:
		return "(unknown resource)"
	}
}
