/* parser.go
 * Contains the logic to parse LiquipediaDB match json into the snapshot
 * match shape used by the feed renderers.
 */

package external

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"esports-feeds/feed"
)

const liquipediaDateLayout = "2006-01-02 15:04:05"

// ParseTeamMatches parses a LiquipediaDB match response for one team.
// Preconditions: Receives the response json and the team the query was for
// Postconditions: Returns the team's matches in response order, or an error
func ParseTeamMatches(matchData string, team feed.TeamInfo) ([]feed.MatchData, error) {
	var root map[string]interface{}
	if err := json.Unmarshal([]byte(matchData), &root); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	rawResults, ok := root["result"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'result' field")
	}

	var matches []feed.MatchData
	for _, result := range rawResults {
		match, err := ParseMatchRow(result, team)
		if err != nil {
			return nil, err
		}
		// Rows that don't involve the team (or have no usable opponent)
		// are skipped, not fatal
		if match == nil {
			continue
		}
		matches = append(matches, *match)
	}
	return matches, nil
}

// ParseMatchRow converts one result row into a MatchData.
// Preconditions: Receives one row of the result list and the tracked team
// Postconditions: Returns the match, nil when the row doesn't concern the
// team, or an error for malformed rows
func ParseMatchRow(result interface{}, team feed.TeamInfo) (*feed.MatchData, error) {
	match, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("error mapping match interface")
	}

	// Match date, GMT
	matchDateStr, ok := match["date"].(string)
	if !ok {
		return nil, fmt.Errorf("error mapping date interface")
	}
	parsedTime, err := time.Parse(liquipediaDateLayout, matchDateStr)
	if err != nil {
		return nil, err
	}

	// Finished flag
	finished, ok := match["finished"].(float64)
	if !ok {
		return nil, fmt.Errorf("error mapping finished interface")
	}

	opponent, score, err := extractOpponent(match, team, finished == 1)
	if err != nil {
		return nil, err
	}
	if opponent == "" {
		return nil, nil
	}

	tournament, _ := match["tournament"].(string)
	if tournament == "" {
		tournament, _ = match["pagename"].(string)
	}
	if tournament == "" {
		tournament = "Match"
	}

	return &feed.MatchData{
		Timestamp:  parsedTime.Unix(),
		Opponent:   opponent,
		Tournament: tournament,
		URL:        matchURL(match, team),
		IsUpcoming: finished == 0,
		Score:      score,
	}, nil
}

// extractOpponent finds the side that is not the tracked team and, for
// finished matches, formats the score from the team's perspective
func extractOpponent(match map[string]interface{}, team feed.TeamInfo, finished bool) (string, string, error) {
	opponentsRaw, ok := match["match2opponents"].([]interface{})
	if !ok || len(opponentsRaw) != 2 {
		return "", "", fmt.Errorf("match2opponents requires exactly 2 values, recieved %d", len(opponentsRaw))
	}

	names := [2]string{}
	scores := [2]string{}
	for i := range opponentsRaw {
		side, ok := opponentsRaw[i].(map[string]interface{})
		if !ok {
			return "", "", fmt.Errorf("error mapping team interface")
		}
		name, ok := side["name"].(string)
		if !ok {
			return "", "", fmt.Errorf("error mapping team name interface")
		}
		names[i] = name
		if scoreFloat, ok := side["score"].(float64); ok {
			scores[i] = fmt.Sprintf("%d", int64(scoreFloat))
		}
	}

	self := -1
	for i, name := range names {
		if strings.EqualFold(name, team.Name) {
			self = i
		}
	}
	if self < 0 {
		return "", "", nil
	}

	opponent := names[1-self]
	if opponent == "" {
		opponent = "TBD"
	}

	var score string
	if finished && scores[self] != "" && scores[1-self] != "" {
		score = fmt.Sprintf("%s : %s", scores[self], scores[1-self])
	}
	return opponent, score, nil
}

// matchURL builds the liquipedia page link for the match's tournament
func matchURL(match map[string]interface{}, team feed.TeamInfo) string {
	pagename, _ := match["pagename"].(string)
	if pagename == "" {
		return ""
	}
	wiki, _ := match["wiki"].(string)
	if wiki == "" {
		wiki = team.Game
	}
	return fmt.Sprintf("https://liquipedia.net/%s/%s", wiki, strings.ReplaceAll(pagename, " ", "_"))
}
