/* team_data.go
 * Contains the methods for interacting with the team_data collection. A
 * snapshot is served from the database while its TTL holds, refreshed from
 * the upstream fetcher when it expires, and falls back to the stale copy or
 * the file cache when the upstream is unavailable.
 */

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"esports-feeds/feed"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	// snapshotTTL matches the refresh hint published in the calendar header
	snapshotTTL = 4 * time.Hour
	// ongoingTTL keeps snapshots fresh while one of the team's matches is live
	ongoingTTL = 10 * time.Minute
)

// Function used to fetch a team's snapshot, refreshing it when stale.
// Preconditions: Receives a context and the team's manifest slug
// Postconditions: Returns the team's TeamData, or ErrNotFound for unknown
// slugs, or an error when no fresh, stale or cached data exists
func (s *Store) FetchTeamData(ctx context.Context, slug string) (*feed.TeamData, error) {
	var doc TeamDataDoc
	var stale *feed.TeamData

	err := s.Collections.TeamData.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		// No snapshot yet, refresh below
	case err != nil:
		return nil, fmt.Errorf("error fetching team data from db: %w", err)
	default:
		td, derr := decodeTeamData(doc.Data)
		if derr != nil {
			return nil, derr
		}
		if doc.TTL >= time.Now().Unix() {
			return td, nil
		}
		stale = td
	}

	fresh, err := s.refreshTeamData(ctx, slug)
	if err == nil {
		return fresh, nil
	}
	log.Printf("refresh failed for %s: %v", slug, err)

	// Fall back to whatever we still have: the stale db copy, then the
	// file cache
	if stale != nil {
		return stale, nil
	}
	if cached, cerr := LoadJSONCache(s.CacheDir, slug); cerr == nil {
		log.Printf("using cached data for %s", slug)
		return decodeTeamData(cached)
	}

	if s.Notifier != nil {
		_ = s.Notifier.SendError(fmt.Sprintf("Failed to fetch %s: %v\n\nNo cached data available — team will be missing.", slug, err))
	}
	return nil, err
}

// refreshTeamData fetches fresh matches from the upstream source, persists
// the snapshot to the database and the file cache, and returns it
func (s *Store) refreshTeamData(ctx context.Context, slug string) (*feed.TeamData, error) {
	team, err := s.lookupTeam(ctx, slug)
	if err != nil {
		return nil, err
	}

	matches, err := s.Fetcher.FetchTeamMatches(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("upstream fetch failed: %w", err)
	}

	td := &feed.TeamData{
		Team:         team,
		Matches:      matches,
		GeneratedUTC: time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}

	data, err := json.MarshalIndent(td, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal team data: %w", err)
	}

	if err := s.storeTeamData(ctx, slug, string(data), determineTTL(matches)); err != nil {
		return nil, err
	}
	if err := SaveJSONCache(s.CacheDir, slug, string(data)); err != nil {
		log.Printf("failed to write cache for %s: %v", slug, err)
	}
	return td, nil
}

// storeTeamData upserts a snapshot document
func (s *Store) storeTeamData(ctx context.Context, slug string, data string, ttl int64) error {
	filter := bson.M{"slug": slug}
	update := bson.M{"$set": TeamDataDoc{Slug: slug, Data: data, TTL: ttl}}

	var raw bson.M
	err := s.Collections.TeamData.FindOne(ctx, filter).Decode(&raw)
	notFound := errors.Is(err, mongo.ErrNoDocuments)
	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing snapshot failed: %w", err)
	}

	if notFound {
		if _, err := s.Collections.TeamData.InsertOne(ctx, TeamDataDoc{Slug: slug, Data: data, TTL: ttl}); err != nil {
			return fmt.Errorf("failed to insert team data: %w", err)
		}
		return nil
	}
	if _, err := s.Collections.TeamData.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update team data: %w", err)
	}
	return nil
}

// determineTTL shortens the refresh window while one of the team's matches
// is live, so scores and status flip promptly once it ends
func determineTTL(matches []feed.MatchData) int64 {
	now := time.Now().Unix()
	for _, m := range matches {
		if now >= m.Timestamp && now <= m.Timestamp+feed.MatchDurationSeconds {
			return time.Now().Add(ongoingTTL).Unix()
		}
	}
	return time.Now().Add(snapshotTTL).Unix()
}

func decodeTeamData(data string) (*feed.TeamData, error) {
	var td feed.TeamData
	if err := json.Unmarshal([]byte(data), &td); err != nil {
		return nil, fmt.Errorf("stored team data is not valid JSON: %w", err)
	}
	return &td, nil
}
