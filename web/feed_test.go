/* feed_test.go
 * Contains unit tests for feed.go functions, using a fake team source in
 * place of the MongoDB-backed store
 */

package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"esports-feeds/feed"
	"esports-feeds/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	teams []feed.TeamInfo
	data  map[string]*feed.TeamData
}

var _ store.Interface = (*fakeStore)(nil)

func (f *fakeStore) ListTeams(ctx context.Context) ([]feed.TeamInfo, error) {
	return f.teams, nil
}

func (f *fakeStore) FetchTeamData(ctx context.Context, slug string) (*feed.TeamData, error) {
	td, ok := f.data[slug]
	if !ok {
		return nil, fmt.Errorf("no snapshot for %s: %w", slug, store.ErrNotFound)
	}
	return td, nil
}

func newFakeStore() *fakeStore {
	teams := manifestFixture()
	fnatic := &feed.TeamData{
		Team: teams[0],
		Matches: []feed.MatchData{
			{Timestamp: 1766102400, Opponent: "G2 Esports", Tournament: "LEC Winter 2026", URL: "https://liquipedia.net/leagueoflegends/LEC/2026/Winter", IsUpcoming: true},
			{Timestamp: 1765929600, Opponent: "MAD Lions", Tournament: "LEC Winter 2026", IsUpcoming: false, Score: "2 : 1"},
		},
		GeneratedUTC: "2026-08-23T04:00:00Z",
	}
	g2 := &feed.TeamData{
		Team: teams[1],
		Matches: []feed.MatchData{
			{Timestamp: 1766188800, Opponent: "Fnatic", Tournament: "LEC Winter 2026", IsUpcoming: true},
		},
		GeneratedUTC: "2026-08-23T04:00:00Z",
	}
	return &fakeStore{
		teams: teams,
		data:  map[string]*feed.TeamData{"Fnatic": fnatic, "G2_Esports": g2},
	}
}

func getFeed(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	s := &Server{store: newFakeStore()}
	r := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	s.FeedHandler(w, r)
	return w
}

// region FeedHandler tests

func TestFeedHandler_ICS(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=ics")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
	assert.Contains(t, body, "UID:fnatic-vs-g2-esports-1766102400@liquipedia.net")
	assert.Contains(t, body, "TRIGGER:-PT30M")
}

func TestFeedHandler_DefaultFormatIsICS(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestFeedHandler_JSON(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=json")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/feed+json; charset=utf-8", w.Header().Get("Content-Type"))

	var f feed.JSONFeed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, "https://jsonfeed.org/version/1.1", f.Version)
	assert.Len(t, f.Items, 2)
	assert.Equal(t, "http://feeds.example.net/feed?teams=fnatic&format=json", f.FeedURL)
}

func TestFeedHandler_RSSServesAtom(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=rss")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/atom+xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `<feed xmlns="http://www.w3.org/2005/Atom">`)
}

func TestFeedHandler_MultipleTeams(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic,g2_esports&format=ics")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 3, strings.Count(w.Body.String(), "BEGIN:VEVENT"))
}

func TestFeedHandler_TournamentFilter(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=ics&tournament=winter")
	assert.Equal(t, 2, strings.Count(w.Body.String(), "BEGIN:VEVENT"))

	w = getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=ics&tournament=worlds")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 0, strings.Count(w.Body.String(), "BEGIN:VEVENT"))
}

func TestFeedHandler_ReminderZero(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=ics&reminder=0")
	assert.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "VALARM")
}

func TestFeedHandler_BadReminder(t *testing.T) {
	for _, raw := range []string{"-1", "1441", "soon"} {
		w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&reminder="+raw)
		assert.Equal(t, 400, w.Code, "reminder=%s", raw)
	}
}

func TestFeedHandler_BadFormat(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=fnatic&format=xml")
	assert.Equal(t, 400, w.Code)
}

func TestFeedHandler_MissingTeamsParam(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed")
	assert.Equal(t, 400, w.Code)
}

func TestFeedHandler_UnknownTeam(t *testing.T) {
	w := getFeed(t, "http://feeds.example.net/feed?teams=zzzzqqqq")
	assert.Equal(t, 404, w.Code)
}

func TestFeedHandler_TeamWithoutSnapshot(t *testing.T) {
	// Karmine Corp is in the manifest but has no snapshot data
	w := getFeed(t, "http://feeds.example.net/feed?teams=karmine_corp")
	assert.Equal(t, 404, w.Code)
}

func TestFeedHandler_WrongMethod(t *testing.T) {
	s := &Server{store: newFakeStore()}
	r := httptest.NewRequest("POST", "http://feeds.example.net/feed?teams=fnatic", nil)
	w := httptest.NewRecorder()
	s.FeedHandler(w, r)

	assert.Equal(t, 405, w.Code)
}

func TestFeedHandler_Options(t *testing.T) {
	s := &Server{store: newFakeStore()}
	r := httptest.NewRequest("OPTIONS", "http://feeds.example.net/feed", nil)
	w := httptest.NewRecorder()
	s.FeedHandler(w, r)

	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

// endregion
