/* liquipedia.go
 * Contains the client used to fetch per-team match data from the
 * LiquipediaDB api. Requests are paced with a shared rate limiter; the
 * Liquipedia terms require well-behaved clients.
 */

package external

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"esports-feeds/feed"

	"golang.org/x/time/rate"
)

const apiURL = "https://api.liquipedia.net/api/v3/match"

type Client struct {
	APIKey     string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// NewClient creates a Liquipedia client.
// Preconditions: Receives the LiquipediaDB api key
// Postconditions: Returns a client pacing requests to one every two seconds
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// FetchTeamMatches fetches the matches involving one team and converts them
// into the snapshot match shape.
// Preconditions: Receives a context and the team's manifest entry
// Postconditions: Returns the team's matches or an error
func (c *Client) FetchTeamMatches(ctx context.Context, team feed.TeamInfo) ([]feed.MatchData, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.getMatchData(ctx, team)
	if err != nil {
		return nil, err
	}
	return ParseTeamMatches(body, team)
}

// getMatchData performs the api request and returns the raw response body
func (c *Client) getMatchData(ctx context.Context, team feed.TeamInfo) (string, error) {
	parsedURL, err := url.Parse(apiURL)
	if err != nil {
		return "", err
	}

	// Set URL parameters
	params := parsedURL.Query()
	params.Set("limit", "100")
	params.Set("wiki", team.Game)
	params.Set("conditions", fmt.Sprintf("[[opponent::%s]]", team.Name))
	params.Set("order", "date DESC")
	params.Set("rawstreams", "false")
	params.Set("streamurls", "false")
	parsedURL.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedURL.String(), nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("Authorization", fmt.Sprintf("Apikey %s", c.APIKey))

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch match data: status code %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body response: %w", err)
	}
	return string(body), nil
}
