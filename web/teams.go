/* teams.go
 * Contains the /teams endpoint and the resolution of user-supplied team
 * queries against the manifest. Queries match slugs and display names
 * case-insensitively, falling back to fuzzy matching so "fnatc" still
 * finds Fnatic.
 */

package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"esports-feeds/feed"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TeamsManifest is the /teams response body
type TeamsManifest struct {
	Teams []feed.TeamInfo `json:"teams"`
}

// TeamsHandler serves GET /teams with the tracked team manifest
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes the manifest JSON, or the mapped error status
func (s *Server) TeamsHandler(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	teams, err := s.store.ListTeams(r.Context())
	if err != nil {
		log.Println("failed to list teams:", err)
		http.Error(w, "team manifest unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(TeamsManifest{Teams: teams}); err != nil {
		log.Println("failed to encode manifest:", err)
	}
}

// resolveTeams matches user queries against the manifest and returns the
// resolved teams in query order plus the queries that matched nothing.
// Preconditions: receives the query strings and the manifest
// Postconditions: returns resolved teams (deduplicated) and unmatched queries
func resolveTeams(queries []string, manifest []feed.TeamInfo) ([]feed.TeamInfo, []string) {
	lookup := make(map[string]feed.TeamInfo)
	var candidates []string
	for _, team := range manifest {
		slug := strings.ToLower(team.Slug)
		name := strings.ToLower(team.Name)
		lookup[slug] = team
		lookup[name] = team
		candidates = append(candidates, slug, name)
	}

	var resolved []feed.TeamInfo
	var unknown []string
	seen := make(map[string]bool)

	appendTeam := func(team feed.TeamInfo) {
		if !seen[team.Slug] {
			seen[team.Slug] = true
			resolved = append(resolved, team)
		}
	}

	for _, query := range queries {
		lower := strings.ToLower(query)

		if team, ok := lookup[lower]; ok {
			appendTeam(team)
			continue
		}

		results := fuzzy.RankFind(lower, candidates)
		if len(results) == 0 {
			unknown = append(unknown, query)
			continue
		}
		// Prefer an exact hit when several candidates fuzzy-match
		best := results[0].Target
		for i := range results {
			if results[i].Target == lower {
				best = results[i].Target
			}
		}
		appendTeam(lookup[best])
	}
	return resolved, unknown
}
