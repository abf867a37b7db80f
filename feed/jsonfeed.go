/* jsonfeed.go
 * Contains the JSON Feed 1.1 renderer. Unlike the ICS and Atom documents
 * the JSON body is marshalled at the boundary, so this builds the feed
 * object rather than text.
 */

package feed

import (
	"fmt"
	"sort"
	"time"
)

const jsonFeedVersion = "https://jsonfeed.org/version/1.1"

const isoDateTimeLayout = "2006-01-02T15:04:05Z"

// JSONFeed is a JSON Feed 1.1 document
type JSONFeed struct {
	Version     string         `json:"version"`
	Title       string         `json:"title"`
	HomePageURL string         `json:"home_page_url"`
	FeedURL     string         `json:"feed_url"`
	Description string         `json:"description"`
	Items       []JSONFeedItem `json:"items"`
}

// JSONFeedItem is a single feed item
type JSONFeedItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DatePublished string   `json:"date_published"`
	URL           string   `json:"url"`
	Tags          []string `json:"tags"`
	ContentText   string   `json:"content_text"`
}

// teamMatch pairs a match with the team whose snapshot supplied it
type teamMatch struct {
	team  TeamInfo
	match MatchData
}

// RenderJSONFeed builds the JSON Feed object for the given teams. Items are
// flattened across teams and sorted by publish date descending; the sort is
// stable so identical input always renders identically.
// Preconditions: receives the (possibly filtered) TeamData list and the request
// Postconditions: returns the feed object ready for marshalling
func RenderJSONFeed(teams []TeamData, req FeedRequest) *JSONFeed {
	names := joinTeamNames(teams)

	flattened := flattenMatches(teams)
	items := make([]JSONFeedItem, 0, len(flattened))
	for _, tm := range flattened {
		status := matchStatus(tm.match)
		url := tm.match.URL
		if url == "" {
			url = tm.team.LiquipediaURL
		}
		items = append(items, JSONFeedItem{
			ID:            EntryID(tm.team.Slug, tm.match.Timestamp, tm.match.Opponent),
			Title:         matchTitle(tm.team, tm.match),
			DatePublished: time.Unix(tm.match.Timestamp, 0).UTC().Format(isoDateTimeLayout),
			URL:           url,
			Tags:          []string{lowerStatus(tm.match), tm.match.Tournament},
			ContentText:   fmt.Sprintf("%s — %s", status, tm.match.Tournament),
		})
	}

	homePage := req.HomePageURL
	if homePage == "" && len(teams) > 0 {
		homePage = teams[0].Team.LiquipediaURL
	}

	return &JSONFeed{
		Version:     jsonFeedVersion,
		Title:       names + " Match Schedule",
		HomePageURL: homePage,
		FeedURL:     req.FeedURL,
		Description: "Upcoming and recent matches for " + names,
		Items:       items,
	}
}

// flattenMatches collects every (team, match) pair and orders them by match
// start descending, keeping input order for equal timestamps
func flattenMatches(teams []TeamData) []teamMatch {
	var out []teamMatch
	for _, td := range teams {
		for _, m := range td.Matches {
			out = append(out, teamMatch{team: td.Team, match: m})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].match.Timestamp > out[j].match.Timestamp
	})
	return out
}

func matchStatus(m MatchData) string {
	if m.IsUpcoming {
		return "Upcoming"
	}
	return "Completed"
}

func lowerStatus(m MatchData) string {
	if m.IsUpcoming {
		return "upcoming"
	}
	return "completed"
}
