/* validate.go
 * Contains the post-render calendar check. A document that the reference
 * parser rejects must never be served, so rendered ICS is parsed back
 * before it leaves the assembler.
 */

package feed

import (
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
)

// ValidateICS parses a rendered calendar document and reports any error.
// Preconditions: receives the rendered ICS text
// Postconditions: returns nil if the document parses, or the parse error
func ValidateICS(doc string) error {
	if !strings.HasPrefix(doc, "BEGIN:VCALENDAR") {
		return fmt.Errorf("document does not start with BEGIN:VCALENDAR")
	}
	if _, err := ics.ParseCalendar(strings.NewReader(doc)); err != nil {
		return fmt.Errorf("calendar did not parse: %w", err)
	}
	return nil
}
