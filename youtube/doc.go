// Package youtube provides a client for the YouTube Data API v3 list
// endpoints: channels.list, search.list and videos.list.
//
// Requests are assembled with chained call builders that validate the
// documented parameter compatibility rules before anything is sent over
// the network, so a request doomed to fail never costs a round trip.
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := youtube.NewClient("your-api-key", logger,
//		youtube.WithUserAgent("my-app/1.0"),
//		youtube.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.SearchList(youtube.SearchPartSnippet).
//		Q("surfing").
//		MaxResults(5).
//		Do(context.Background())
//
// A call builder is configured once and consumed exactly once by Do.
// The client itself is read-only after construction and safe for
// concurrent use.
//
// # Error Handling
//
// Failures are classified into three families:
//
//   - *BuilderError: a parameter validation failure, raised before the
//     request is sent (invalid, incompatible or missing parameters, or
//     parameters that require authorization this client cannot provide)
//   - *TransportError: a network-layer failure, opaque beyond the
//     wrapped error
//   - *APIError: a structured non-2xx response from the API, carrying
//     the upstream status, message and per-violation detail records
//
// Any URL rendered in an error has the API key replaced with a
// placeholder and its query parameters sorted.
package youtube
