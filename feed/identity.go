/* identity.go
 * Contains the canonical event identity used for calendar UIDs. Two teams
 * that both track the same real-world match must derive the same UID from
 * their own snapshots, so calendar clients can collapse the duplicates.
 */

package feed

import (
	"fmt"
	"strings"
)

// uidNamespace keeps event UIDs out of unrelated identifier spaces.
const uidNamespace = "@liquipedia.net"

// NormalizeToken converts a display name or slug into a comparison token:
// whitespace runs collapse to single hyphens, underscores become hyphens,
// and the result is lowercased.
// Preconditions: receives any string
// Postconditions: returns the normalized token (may be empty)
func NormalizeToken(s string) string {
	token := strings.Join(strings.Fields(s), "-")
	token = strings.ReplaceAll(token, "_", "-")
	return strings.ToLower(token)
}

// CanonicalUID derives the event UID for a (team, match) pair. The team's
// slug and the opponent name are normalized, sorted as an unordered pair and
// joined with "-vs-", so either side's record yields the same UID.
// Preconditions: receives the team's slug, the opponent display name and the match start epoch
// Postconditions: returns the UID string
func CanonicalUID(teamSlug, opponent string, timestamp int64) string {
	self := NormalizeToken(teamSlug)
	other := NormalizeToken(opponent)
	if other < self {
		self, other = other, self
	}
	return fmt.Sprintf("%s-vs-%s-%d%s", self, other, timestamp, uidNamespace)
}

// EntryID derives the per-feed item id used by the JSON Feed and Atom
// renderers. Unlike the calendar UID this is team-scoped, matching the ids
// the feeds have always published.
func EntryID(teamSlug string, timestamp int64, opponent string) string {
	return fmt.Sprintf("%s-%d-%s", strings.ToLower(teamSlug), timestamp, NormalizeToken(opponent))
}
