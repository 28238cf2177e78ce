// Package filter compiles expression-language predicates and applies
// them to search results and videos after they come back from the API.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ytdata-go/ytdata/youtube"
)

// CompilationError describes why an expression could not be compiled
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to compile filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to compile filter %q: %s", e.Expression, e.Reason)
}

// Unwrap returns the underlying compiler error
func (e *CompilationError) Unwrap() error { return e.Err }

// Filter is a compiled predicate. A Filter is immutable and safe for
// concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Compile with the static helper environment for validation
	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // Allow resource properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "invalid expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// MatchSearch evaluates the filter against a search result. Results that
// cause an evaluation error are treated as non-matching.
func (f *Filter) MatchSearch(result youtube.SearchResult) bool {
	return f.run(searchEnvironment(result))
}

// MatchVideo evaluates the filter against a video
func (f *Filter) MatchVideo(video youtube.Video) bool {
	return f.run(videoEnvironment(video))
}

func (f *Filter) run(env map[string]any) bool {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}
	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool)
}

// SearchResults returns the search results matching the filter, in the
// original order.
func SearchResults(results []youtube.SearchResult, f *Filter) []youtube.SearchResult {
	if f == nil {
		return results
	}
	matched := make([]youtube.SearchResult, 0, len(results))
	for _, result := range results {
		if f.MatchSearch(result) {
			matched = append(matched, result)
		}
	}
	return matched
}

// Videos returns the videos matching the filter, in the original order.
func Videos(videos []youtube.Video, f *Filter) []youtube.Video {
	if f == nil {
		return videos
	}
	matched := make([]youtube.Video, 0, len(videos))
	for _, video := range videos {
		if f.MatchVideo(video) {
			matched = append(matched, video)
		}
	}
	return matched
}

// helperFunctions creates the static helper functions used during
// compilation
func helperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// searchEnvironment creates the runtime environment for evaluating a
// filter against one search result
func searchEnvironment(result youtube.SearchResult) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Result"] = result
	env["Kind"] = result.ID.Kind
	env["VideoID"] = result.ID.VideoID
	env["ChannelID"] = result.ID.ChannelID
	env["PlaylistID"] = result.ID.PlaylistID
	env["isVideo"] = func() bool { return result.ID.VideoID != "" }
	env["isChannel"] = func() bool { return result.ID.ChannelID != "" }
	env["isPlaylist"] = func() bool { return result.ID.PlaylistID != "" }

	if snippet := result.Snippet; snippet != nil {
		env["Title"] = snippet.Title
		env["Description"] = snippet.Description
		env["ChannelTitle"] = snippet.ChannelTitle
		env["PublishedAt"] = snippet.PublishedAt
		env["LiveBroadcastContent"] = snippet.LiveBroadcastContent
		env["isLive"] = func() bool { return snippet.LiveBroadcastContent == "live" }
	} else {
		env["Title"] = ""
		env["Description"] = ""
		env["ChannelTitle"] = ""
		env["PublishedAt"] = time.Time{}
		env["LiveBroadcastContent"] = ""
		env["isLive"] = func() bool { return false }
	}

	return env
}

// videoEnvironment creates the runtime environment for evaluating a
// filter against one video
func videoEnvironment(video youtube.Video) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Video"] = video
	env["ID"] = video.ID

	var tags []string
	if snippet := video.Snippet; snippet != nil {
		tags = snippet.Tags
		env["Title"] = snippet.Title
		env["Description"] = snippet.Description
		env["ChannelTitle"] = snippet.ChannelTitle
		env["ChannelID"] = snippet.ChannelID
		env["PublishedAt"] = snippet.PublishedAt
		env["Tags"] = snippet.Tags
		env["CategoryID"] = snippet.CategoryID
	} else {
		env["Title"] = ""
		env["Description"] = ""
		env["ChannelTitle"] = ""
		env["ChannelID"] = ""
		env["PublishedAt"] = time.Time{}
		env["Tags"] = []string(nil)
		env["CategoryID"] = ""
	}
	env["hasTag"] = hasTagFunc(tags)

	if stats := video.Statistics; stats != nil {
		env["ViewCount"] = stats.ViewCount
		env["LikeCount"] = stats.LikeCount
		env["CommentCount"] = stats.CommentCount
	} else {
		env["ViewCount"] = uint64(0)
		env["LikeCount"] = uint64(0)
		env["CommentCount"] = uint64(0)
	}

	return env
}

func hasTagFunc(tags []string) func(string) bool {
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}
	return func(tag string) bool {
		target := strings.ToLower(tag)
		for _, t := range lowerTags {
			if t == target {
				return true
			}
		}
		return false
	}
}
