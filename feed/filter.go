/* filter.go
 * Contains the tournament filter applied before any renderer runs. The
 * filter narrows each team's match slice in place so all three renderers
 * see the same view.
 */

package feed

import "strings"

// ApplyTournamentFilter narrows every team's matches to those whose
// tournament name contains the filter as a case-insensitive substring.
// An empty filter leaves the data untouched.
// Preconditions: receives a slice of TeamData and the filter string
// Postconditions: the Matches slices are narrowed in place
func ApplyTournamentFilter(teams []TeamData, filter string) {
	if filter == "" {
		return
	}
	needle := strings.ToLower(filter)
	for i := range teams {
		kept := teams[i].Matches[:0]
		for _, m := range teams[i].Matches {
			if strings.Contains(strings.ToLower(m.Tournament), needle) {
				kept = append(kept, m)
			}
		}
		teams[i].Matches = kept
	}
}
