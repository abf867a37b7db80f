/* models.go
 * Contains the document structs stored in MongoDB. Snapshots are stored as
 * the raw JSON string the data generator produced so the served bytes stay
 * byte-identical to the snapshot schema.
 */

package store

import (
	"errors"

	"esports-feeds/feed"
)

// ErrNotFound is returned when a slug has no manifest entry
var ErrNotFound = errors.New("team not found")

// TeamDataDoc is one team's snapshot document
type TeamDataDoc struct {
	Slug string `bson:"slug"`
	Data string `bson:"data"` // feed.TeamData as JSON
	TTL  int64  `bson:"ttl"`
}

// TeamRecord mirrors feed.TeamInfo with bson tags for the manifest document
type TeamRecord struct {
	Name          string `bson:"name" json:"name"`
	Slug          string `bson:"slug" json:"slug"`
	ShortName     string `bson:"short_name" json:"short_name"`
	Emoji         string `bson:"emoji" json:"emoji"`
	Game          string `bson:"game" json:"game"`
	LiquipediaURL string `bson:"liquipedia_url" json:"liquipedia_url"`
	LogoURL       string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
}

// ManifestDoc is the single document listing the tracked teams in their
// configured order
type ManifestDoc struct {
	ID           string       `bson:"_id"`
	Teams        []TeamRecord `bson:"teams"`
	GeneratedUTC string       `bson:"generated_utc"`
}

const manifestID = "manifest"

// Info converts a manifest record into the feed-layer team struct
func (r TeamRecord) Info() feed.TeamInfo {
	return feed.TeamInfo{
		Name:          r.Name,
		Slug:          r.Slug,
		ShortName:     r.ShortName,
		Emoji:         r.Emoji,
		Game:          r.Game,
		LiquipediaURL: r.LiquipediaURL,
		LogoURL:       r.LogoURL,
	}
}

// NewTeamRecord converts a feed-layer team struct into a manifest record
func NewTeamRecord(info feed.TeamInfo) TeamRecord {
	return TeamRecord{
		Name:          info.Name,
		Slug:          info.Slug,
		ShortName:     info.ShortName,
		Emoji:         info.Emoji,
		Game:          info.Game,
		LiquipediaURL: info.LiquipediaURL,
		LogoURL:       info.LogoURL,
	}
}
