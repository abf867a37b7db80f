/* assembler.go
 * Contains the entry point for rendering a feed: validates the request,
 * applies the tournament filter, dispatches to the requested renderer and
 * returns the document with its MIME type.
 */

package feed

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoTeams distinguishes "nothing to render" from a successfully
	// rendered empty feed
	ErrNoTeams = errors.New("no team data to render")
	// ErrBadFormat is returned for format values outside ics, json and rss
	ErrBadFormat = errors.New("unknown feed format")
	// ErrBadReminder is returned for reminder values outside [0, 1440]
	ErrBadReminder = errors.New("reminder minutes out of range")
)

// RenderedFeed is one rendered document and its content type
type RenderedFeed struct {
	Body        []byte
	ContentType string
}

// Render validates the request, narrows the match lists by the tournament
// filter and renders the document for the requested format. Validation
// failures are reported before any rendering happens.
// Preconditions: receives the resolved TeamData list and the request parameters
// Postconditions: returns the rendered document or one of the sentinel errors
func Render(teams []TeamData, req FeedRequest) (*RenderedFeed, error) {
	if req.ReminderMinutes < 0 || req.ReminderMinutes > MaxReminderMinutes {
		return nil, fmt.Errorf("%w: %d", ErrBadReminder, req.ReminderMinutes)
	}
	switch req.Format {
	case "ics", "json", "rss":
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, req.Format)
	}
	if len(teams) == 0 {
		return nil, ErrNoTeams
	}

	ApplyTournamentFilter(teams, req.TournamentFilter)

	switch req.Format {
	case "ics":
		doc := RenderICS(teams, req.ReminderMinutes)
		if err := ValidateICS(doc); err != nil {
			return nil, fmt.Errorf("generated calendar failed validation: %w", err)
		}
		return &RenderedFeed{Body: []byte(doc), ContentType: "text/calendar; charset=utf-8"}, nil
	case "json":
		body, err := json.MarshalIndent(RenderJSONFeed(teams, req), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json feed: %w", err)
		}
		return &RenderedFeed{Body: body, ContentType: "application/feed+json; charset=utf-8"}, nil
	default: // "rss", which has always served Atom
		doc := RenderAtom(teams, req)
		return &RenderedFeed{Body: []byte(doc), ContentType: "application/atom+xml; charset=utf-8"}, nil
	}
}
