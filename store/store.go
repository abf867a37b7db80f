/* store.go
 * Contains the Store struct and NewStore function. The methods for this
 * package are split across team_data.go (snapshot fetch/refresh) and
 * manifest.go (team list); cache.go holds the file-cache fallback.
 */

package store

import (
	"context"
	"fmt"

	"esports-feeds/feed"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MatchFetcher retrieves fresh match data for a team from the upstream
// source. Implemented by the external package.
type MatchFetcher interface {
	FetchTeamMatches(ctx context.Context, team feed.TeamInfo) ([]feed.MatchData, error)
}

// Notifier reports retrieval failures that left a team without any data.
// Implemented by the notify package; may be nil.
type Notifier interface {
	SendError(message string) error
}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	CacheDir    string
	Fetcher     MatchFetcher
	Notifier    Notifier
	Collections struct {
		TeamData *mongo.Collection
		Teams    *mongo.Collection
	}
}

// Function for initialising Store. Connects to the database and wires the
// collections used by the snapshot and manifest methods.
// Preconditions: Receives strings containing dbName, mongoURI and cacheDir, plus the upstream fetcher
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string, cacheDir string, fetcher MatchFetcher) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
		CacheDir: cacheDir,
		Fetcher:  fetcher,
	}
	s.Collections.TeamData = db.Collection("team_data")
	s.Collections.Teams = db.Collection("teams")
	return s, nil
}
