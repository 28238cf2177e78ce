package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytdata-go/ytdata/youtube"
)

var (
	channelIDs      string
	channelUsername string
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Look up channels by ID or legacy username",
	Long: `Look up channel metadata and statistics, e.g.:

  ytdata channels --id UC_x5XG1OV2P6uZZ5FSM9Ttw
  ytdata channels --username GoogleDevelopers`,
	RunE: runChannels,
}

func init() {
	rootCmd.AddCommand(channelsCmd)

	channelsCmd.Flags().StringVar(&channelIDs, "id", "", "comma-separated channel IDs")
	channelsCmd.Flags().StringVar(&channelUsername, "username", "", "legacy YouTube username")
}

func runChannels(cmd *cobra.Command, args []string) error {
	call := client.ChannelList(youtube.ChannelPartSnippet, youtube.ChannelPartStatistics)
	if channelIDs != "" {
		call.ID(channelIDs)
	}
	if channelUsername != "" {
		call.ForUsername(channelUsername)
	}

	response, err := call.Do(context.Background())
	if err != nil {
		return err
	}

	if len(response.Items) == 0 {
		fmt.Println("No channels found.")
		return nil
	}

	fmt.Printf("\nFound %d channels:\n", len(response.Items))
	fmt.Println(strings.Repeat("-", 80))

	for _, channel := range response.Items {
		title := "(untitled)"
		if channel.Snippet != nil && channel.Snippet.Title != "" {
			title = channel.Snippet.Title
		}
		fmt.Printf("• %s\n", title)
		fmt.Printf("  https://www.youtube.com/channel/%s\n", channel.ID)
		if channel.Snippet != nil {
			if channel.Snippet.CustomURL != "" {
				fmt.Printf("  Custom URL: %s\n", channel.Snippet.CustomURL)
			}
			if channel.Snippet.Country != "" {
				fmt.Printf("  Country: %s\n", channel.Snippet.Country)
			}
			fmt.Printf("  Created: %s\n", channel.Snippet.PublishedAt.Format("2006-01-02"))
		}
		if stats := channel.Statistics; stats != nil {
			subscribers := fmt.Sprintf("%d", stats.SubscriberCount)
			if stats.HiddenSubscriberCount {
				subscribers = "hidden"
			}
			fmt.Printf("  Subscribers: %s  Videos: %d  Views: %d\n",
				subscribers, stats.VideoCount, stats.ViewCount)
		}
	}

	return nil
}
