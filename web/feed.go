/* feed.go
 * Contains the /feed endpoint: resolves the requested teams, fetches their
 * snapshots and returns the rendered document in the requested format.
 */

package web

import (
	"errors"
	"log"
	"net/http"

	"esports-feeds/feed"
	"esports-feeds/store"
)

// FeedHandler serves GET /feed?teams=a,b&format=ics|json|rss with optional
// tournament and reminder parameters
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes the rendered feed, or the mapped error status
func (s *Server) FeedHandler(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	queries, req, err := parseFeedRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	manifest, err := s.store.ListTeams(r.Context())
	if err != nil {
		log.Println("failed to list teams:", err)
		http.Error(w, "team manifest unavailable", http.StatusInternalServerError)
		return
	}

	resolved, unknown := resolveTeams(queries, manifest)
	if len(unknown) > 0 {
		log.Printf("unresolved team queries: %v", unknown)
	}
	if len(resolved) == 0 {
		http.Error(w, "no matching teams", http.StatusNotFound)
		return
	}

	var teams []feed.TeamData
	for _, info := range resolved {
		td, err := s.store.FetchTeamData(r.Context(), info.Slug)
		if err != nil {
			// A single missing team doesn't fail the whole feed
			log.Printf("no data for %s: %v", info.Slug, err)
			continue
		}
		teams = append(teams, *td)
	}

	out, err := feed.Render(teams, req)
	if err != nil {
		switch {
		case errors.Is(err, feed.ErrBadFormat), errors.Is(err, feed.ErrBadReminder):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, feed.ErrNoTeams), errors.Is(err, store.ErrNotFound):
			http.Error(w, "no team data available", http.StatusNotFound)
		default:
			log.Println("render failed:", err)
			http.Error(w, "failed to render feed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Body); err != nil {
		log.Println("failed to write response:", err)
	}
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
}
