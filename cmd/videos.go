package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytdata-go/ytdata/filter"
	"github.com/ytdata-go/ytdata/youtube"
)

var (
	videosChart    bool
	videosRegion   string
	videosCategory string
)

// videosCmd represents the videos command
var videosCmd = &cobra.Command{
	Use:   "videos [id...]",
	Short: "Look up videos by ID or list the most popular chart",
	Long: `Look up videos by their IDs, or fetch the most popular chart for a
region. Any number of IDs can be given; lookups are batched, e.g.:

  ytdata videos dQw4w9WgXcQ 9bZkp7q19f0
  ytdata videos --chart --region DE --category 10`,
	RunE: runVideos,
}

func init() {
	rootCmd.AddCommand(videosCmd)

	videosCmd.Flags().BoolVar(&videosChart, "chart", false, "fetch the most popular chart instead of IDs")
	videosCmd.Flags().StringVar(&videosRegion, "region", "", "two-letter region code for the chart")
	videosCmd.Flags().StringVar(&videosCategory, "category", "", "video category ID for the chart")
	videosCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to results")
	videosCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	videosCmd.Flags().Int64VarP(&maxResults, "max-results", "n", 25, "page size for the chart (1-50)")
}

func runVideos(cmd *cobra.Command, args []string) error {
	if videosChart == (len(args) > 0) {
		return fmt.Errorf("specify either video IDs or --chart")
	}

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var videoFilter *filter.Filter
	if expression != "" {
		videoFilter, err = filter.Compile(expression)
		if err != nil {
			return err
		}
	}

	parts := []youtube.VideoPart{youtube.VideoPartSnippet, youtube.VideoPartStatistics}
	ctx := context.Background()

	var videos []youtube.Video
	if videosChart {
		call := client.VideoList(parts...).
			Chart(youtube.ChartMostPopular).
			MaxResults(maxResults)
		if videosRegion != "" {
			call.RegionCode(videosRegion)
		}
		if videosCategory != "" {
			call.VideoCategoryID(videosCategory)
		}

		response, err := call.Do(ctx)
		if err != nil {
			return err
		}
		videos = response.Items
	} else {
		videos, err = client.VideosByID(ctx, parts, args)
		if err != nil {
			return err
		}
	}

	videos = filter.Videos(videos, videoFilter)
	if len(videos) == 0 {
		fmt.Println("No videos found.")
		return nil
	}

	fmt.Printf("\nFound %d videos:\n", len(videos))
	fmt.Println(strings.Repeat("-", 80))

	for _, video := range videos {
		title := "(untitled)"
		if video.Snippet != nil && video.Snippet.Title != "" {
			title = video.Snippet.Title
		}
		fmt.Printf("• %s\n", title)
		fmt.Printf("  https://www.youtube.com/watch?v=%s\n", video.ID)
		if video.Snippet != nil {
			fmt.Printf("  Published: %s by %s\n",
				video.Snippet.PublishedAt.Format("2006-01-02"),
				video.Snippet.ChannelTitle)
		}
		if video.Statistics != nil {
			fmt.Printf("  Views: %d  Likes: %d  Comments: %d\n",
				video.Statistics.ViewCount,
				video.Statistics.LikeCount,
				video.Statistics.CommentCount)
		}
	}

	return nil
}
