/* models.go
 * Contains the structs shared by the feed renderers. TeamData mirrors the
 * per-team JSON snapshots produced by the data generator, so the json tags
 * must stay in sync with the snapshot schema.
 */

package feed

// MatchDurationSeconds is the fixed event length used for every match,
// regardless of game or format. DTEND is always DTSTART plus this value.
const MatchDurationSeconds = 7200

// DefaultReminderMinutes is used when no reminder parameter is supplied.
const DefaultReminderMinutes = 30

// MaxReminderMinutes caps the reminder parameter at 24 hours.
const MaxReminderMinutes = 1440

// TeamInfo holds the static configuration for a tracked team
type TeamInfo struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	ShortName     string `json:"short_name"`
	Emoji         string `json:"emoji"`
	Game          string `json:"game"`
	LiquipediaURL string `json:"liquipedia_url"`
	LogoURL       string `json:"logo_url,omitempty"`
}

// MatchData holds a single match, upcoming or past
type MatchData struct {
	Timestamp  int64  `json:"timestamp"`
	Opponent   string `json:"opponent"`
	Tournament string `json:"tournament"`
	URL        string `json:"url"`
	IsUpcoming bool   `json:"is_upcoming"`
	Score      string `json:"score,omitempty"`
}

// TeamData is one team's snapshot: its config, its matches in scraped
// order, and when the snapshot was generated
type TeamData struct {
	Team         TeamInfo    `json:"team"`
	Matches      []MatchData `json:"matches"`
	GeneratedUTC string      `json:"generated_utc"`
}

// FeedRequest carries the already-resolved parameters for one render
type FeedRequest struct {
	Format           string // "ics", "json" or "rss"
	TournamentFilter string // optional case-insensitive substring
	ReminderMinutes  int    // [0, 1440]
	FeedURL          string // full request URL, used verbatim in feeds
	HomePageURL      string // request origin
}
