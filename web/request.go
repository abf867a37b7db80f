/* request.go
 * Contains the parsing of /feed request parameters into the core's
 * FeedRequest. Validation failures surface here, before any team data is
 * fetched or rendered.
 */

package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"esports-feeds/feed"

	"github.com/go-andiamo/splitter"
)

// parseTeamsParam splits the comma-separated teams parameter. We use
// splitter here instead of strings.Split because quoted entries may contain
// commas, e.g. "FlyQuest, Red" stays one query.
func parseTeamsParam(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("teams parameter is required")
	}

	commaSplitter, err := splitter.NewSplitter(',', splitter.DoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := commaSplitter.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid teams parameter: %w", err)
	}

	var queries []string
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"`)
		if p != "" {
			queries = append(queries, p)
		}
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("teams parameter is required")
	}
	return queries, nil
}

// parseReminderParam parses the reminder parameter. Absent means the
// default; anything present must be an integer, range checking happens in
// the renderer.
func parseReminderParam(raw string) (int, error) {
	if raw == "" {
		return feed.DefaultReminderMinutes, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", feed.ErrBadReminder, raw)
	}
	return minutes, nil
}

// parseFeedRequest assembles the core request from the HTTP request.
// Preconditions: Receives the HTTP request
// Postconditions: Returns the team queries and the FeedRequest, or an error
// for malformed parameters
func parseFeedRequest(r *http.Request) ([]string, feed.FeedRequest, error) {
	query := r.URL.Query()

	queries, err := parseTeamsParam(query.Get("teams"))
	if err != nil {
		return nil, feed.FeedRequest{}, err
	}

	minutes, err := parseReminderParam(query.Get("reminder"))
	if err != nil {
		return nil, feed.FeedRequest{}, err
	}

	format := query.Get("format")
	if format == "" {
		format = "ics"
	}

	origin := requestOrigin(r)
	return queries, feed.FeedRequest{
		Format:           format,
		TournamentFilter: query.Get("tournament"),
		ReminderMinutes:  minutes,
		FeedURL:          origin + r.URL.RequestURI(),
		HomePageURL:      origin,
	}, nil
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
