/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"esports-feeds/feed"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	FetchTeamData(ctx context.Context, slug string) (*feed.TeamData, error)
	ListTeams(ctx context.Context) ([]feed.TeamInfo, error)
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
