/* manifest.go
 * Contains the methods for interacting with the teams manifest. The
 * manifest is a single document so the configured team order survives the
 * round trip through the database.
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"esports-feeds/feed"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Function used to fetch the ordered list of tracked teams.
// Preconditions: Receives a context
// Postconditions: Returns the teams in configured order, or an error
func (s *Store) ListTeams(ctx context.Context) ([]feed.TeamInfo, error) {
	var doc ManifestDoc
	err := s.Collections.Teams.FindOne(ctx, bson.M{"_id": manifestID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no team manifest present: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching team manifest: %w", err)
	}

	teams := make([]feed.TeamInfo, 0, len(doc.Teams))
	for _, rec := range doc.Teams {
		teams = append(teams, rec.Info())
	}
	return teams, nil
}

// Function to replace the stored team manifest.
// Preconditions: Receives a context and at least one team
// Postconditions: The manifest document holds the given teams in order
func (s *Store) StoreManifest(ctx context.Context, teams []feed.TeamInfo) error {
	if len(teams) == 0 {
		return fmt.Errorf("teams input has length 0, requires at least 1")
	}

	records := make([]TeamRecord, 0, len(teams))
	for _, t := range teams {
		records = append(records, NewTeamRecord(t))
	}
	doc := ManifestDoc{
		ID:           manifestID,
		Teams:        records,
		GeneratedUTC: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.Collections.Teams.ReplaceOne(ctx, bson.M{"_id": manifestID}, doc, opts); err != nil {
		return fmt.Errorf("failed to store team manifest: %w", err)
	}
	return nil
}

// lookupTeam finds one team in the manifest by slug, case-insensitively
func (s *Store) lookupTeam(ctx context.Context, slug string) (feed.TeamInfo, error) {
	teams, err := s.ListTeams(ctx)
	if err != nil {
		return feed.TeamInfo{}, err
	}
	for _, t := range teams {
		if strings.EqualFold(t.Slug, slug) {
			return t, nil
		}
	}
	return feed.TeamInfo{}, fmt.Errorf("no manifest entry for slug %q: %w", slug, ErrNotFound)
}
