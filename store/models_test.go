/* models_test.go
 * Contains unit tests for models.go functions
 */

package store

import (
	"testing"

	"esports-feeds/feed"

	"github.com/stretchr/testify/assert"
)

func TestTeamRecordRoundTrip(t *testing.T) {
	info := feed.TeamInfo{
		Name:          "Fnatic",
		Slug:          "Fnatic",
		ShortName:     "FNC",
		Emoji:         "🇪🇺",
		Game:          "leagueoflegends",
		LiquipediaURL: "https://liquipedia.net/leagueoflegends/Fnatic",
		LogoURL:       "https://liquipedia.net/commons/images/fnatic.png",
	}

	assert.Equal(t, info, NewTeamRecord(info).Info())
}

func TestDecodeTeamData(t *testing.T) {
	td, err := decodeTeamData(`{
		"team": {"name": "Fnatic", "slug": "Fnatic", "short_name": "FNC", "emoji": "🇪🇺", "game": "leagueoflegends", "liquipedia_url": "https://liquipedia.net/leagueoflegends/Fnatic"},
		"matches": [{"timestamp": 1766102400, "opponent": "G2 Esports", "tournament": "LEC Winter 2026", "url": "", "is_upcoming": true}],
		"generated_utc": "2026-08-23T04:00:00Z"
	}`)

	assert.NoError(t, err)
	assert.Equal(t, "Fnatic", td.Team.Name)
	assert.Len(t, td.Matches, 1)
	assert.Equal(t, int64(1766102400), td.Matches[0].Timestamp)
}

func TestDecodeTeamData_Invalid(t *testing.T) {
	_, err := decodeTeamData("not json")
	assert.Error(t, err)
}
