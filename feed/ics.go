/* ics.go
 * Contains the RFC 5545 calendar renderer. The document is built line by
 * line with CRLF terminators; property order and escaping are part of the
 * published output, so nothing here goes through a serializer.
 */

package feed

import (
	"fmt"
	"strings"
	"time"
)

// descriptionSeparator is the literal two-character "\n" sequence the feeds
// have always published between description segments. It is escaped again
// by EscapeICS, which is intentional: subscribed clients expect the literal
// form, not a real line break.
const descriptionSeparator = `\n`

const icsDateTimeLayout = "20060102T150405Z"

// RenderICS renders a VCALENDAR document for the given teams. One VEVENT is
// emitted per match in team-then-match order. Upcoming matches get a
// display alarm when reminderMinutes is positive.
// Preconditions: receives the (possibly filtered) TeamData list and a reminder duration in minutes
// Postconditions: returns the complete ICS text with CRLF line endings
func RenderICS(teams []TeamData, reminderMinutes int) string {
	var b strings.Builder
	names := joinTeamNames(teams)

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//"+EscapeICS(names)+" Match Calendar//liquipedia.net//")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "X-WR-CALNAME:"+EscapeICS(names)+" Matches")
	writeLine(&b, "X-PUBLISHED-TTL:PT4H")

	for _, td := range teams {
		for _, m := range td.Matches {
			writeEvent(&b, td.Team, m, reminderMinutes)
		}
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

// writeEvent emits a single VEVENT block
func writeEvent(b *strings.Builder, team TeamInfo, m MatchData, reminderMinutes int) {
	start := time.Unix(m.Timestamp, 0).UTC()
	end := start.Add(MatchDurationSeconds * time.Second)

	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, "UID:"+CanonicalUID(team.Slug, m.Opponent, m.Timestamp))
	writeLine(b, "DTSTART:"+start.Format(icsDateTimeLayout))
	writeLine(b, "DTEND:"+end.Format(icsDateTimeLayout))
	writeLine(b, "SUMMARY:"+EscapeICS(matchTitle(team, m)))
	writeLine(b, "DESCRIPTION:"+EscapeICS(buildDescription(m)))
	writeLine(b, "STATUS:CONFIRMED")
	if m.URL != "" {
		writeLine(b, "URL:"+m.URL)
	}
	if !m.IsUpcoming {
		// Completed matches should not block free/busy time
		writeLine(b, "TRANSP:TRANSPARENT")
	}
	if m.IsUpcoming && reminderMinutes > 0 {
		writeLine(b, "BEGIN:VALARM")
		writeLine(b, "ACTION:DISPLAY")
		reminder := fmt.Sprintf("%s vs %s starts in %d minutes!", team.Name, m.Opponent, reminderMinutes)
		writeLine(b, "DESCRIPTION:"+EscapeICS(reminder))
		writeLine(b, fmt.Sprintf("TRIGGER:-PT%dM", reminderMinutes))
		writeLine(b, "END:VALARM")
	}
	writeLine(b, "END:VEVENT")
}

// buildDescription assembles the event description segments, joined with
// the literal escaped newline sequence
func buildDescription(m MatchData) string {
	parts := []string{"Tournament: " + m.Tournament}
	if m.URL != "" {
		parts = append(parts, "More info: "+m.URL)
	}
	if !m.IsUpcoming {
		if m.Score != "" {
			parts = append(parts, "Score: "+m.Score)
		}
		parts = append(parts, "(Completed match)")
	}
	return strings.Join(parts, descriptionSeparator)
}

// matchTitle builds the event summary shared by all three renderers
func matchTitle(team TeamInfo, m MatchData) string {
	return fmt.Sprintf("%s %s vs %s", team.Emoji, team.ShortName, m.Opponent)
}

// joinTeamNames joins the display names of the selected teams
func joinTeamNames(teams []TeamData) string {
	names := make([]string, 0, len(teams))
	for _, td := range teams {
		names = append(names, td.Team.Name)
	}
	return strings.Join(names, ", ")
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}
