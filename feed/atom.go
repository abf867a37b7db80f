/* atom.go
 * Contains the Atom 1.0 renderer. The historical endpoint name is "rss" but
 * the document has always been Atom; keep serving Atom under that name.
 */

package feed

import (
	"fmt"
	"strings"
	"time"
)

// atomNamespace is the urn prefix for feed and entry ids.
const atomNamespace = "esports-calendar"

// RenderAtom renders the Atom document for the given teams. Entries are
// flattened across teams and sorted by match start descending.
// Preconditions: receives the (possibly filtered) TeamData list and the request
// Postconditions: returns the complete XML text
func RenderAtom(teams []TeamData, req FeedRequest) string {
	return renderAtom(teams, req, time.Now().UTC())
}

func renderAtom(teams []TeamData, req FeedRequest, now time.Time) string {
	names := joinTeamNames(teams)

	slugs := make([]string, 0, len(teams))
	for _, td := range teams {
		slugs = append(slugs, strings.ToLower(td.Team.Slug))
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<feed xmlns=\"http://www.w3.org/2005/Atom\">\n")
	fmt.Fprintf(&b, "  <id>urn:%s:%s</id>\n", atomNamespace, strings.Join(slugs, "-"))
	fmt.Fprintf(&b, "  <title>%s Match Schedule</title>\n", EscapeXML(names))
	fmt.Fprintf(&b, "  <subtitle>Upcoming and recent matches for %s</subtitle>\n", EscapeXML(names))
	fmt.Fprintf(&b, "  <updated>%s</updated>\n", now.Format(isoDateTimeLayout))
	fmt.Fprintf(&b, "  <link href=\"%s\" rel=\"self\" type=\"application/atom+xml\"/>\n", EscapeXML(req.FeedURL))
	fmt.Fprintf(&b, "  <generator>%s</generator>\n", atomNamespace)

	for _, tm := range flattenMatches(teams) {
		writeEntry(&b, tm)
	}

	b.WriteString("</feed>\n")
	return b.String()
}

// writeEntry emits a single Atom entry
func writeEntry(b *strings.Builder, tm teamMatch) {
	date := time.Unix(tm.match.Timestamp, 0).UTC().Format(isoDateTimeLayout)

	b.WriteString("  <entry>\n")
	fmt.Fprintf(b, "    <id>urn:%s:%s</id>\n", atomNamespace, EntryID(tm.team.Slug, tm.match.Timestamp, tm.match.Opponent))
	fmt.Fprintf(b, "    <title>%s</title>\n", EscapeXML(matchTitle(tm.team, tm.match)))
	fmt.Fprintf(b, "    <updated>%s</updated>\n", date)
	fmt.Fprintf(b, "    <summary>%s — %s</summary>\n", matchStatus(tm.match), EscapeXML(tm.match.Tournament))
	fmt.Fprintf(b, "    <link href=\"%s\" rel=\"alternate\"/>\n", EscapeXML(tm.match.URL))
	fmt.Fprintf(b, "    <category term=\"%s\"/>\n", lowerStatus(tm.match))
	b.WriteString("  </entry>\n")
}
