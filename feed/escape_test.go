/* escape_test.go
 * Contains unit tests for escape.go functions
 */

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// region EscapeICS tests

func TestEscapeICS_Specials(t *testing.T) {
	assert.Equal(t, `Semi\;Final\, Bo3`, EscapeICS(`Semi;Final, Bo3`))
}

func TestEscapeICS_Backslash(t *testing.T) {
	assert.Equal(t, `a\\b`, EscapeICS(`a\b`))
}

func TestEscapeICS_NoDoubleEscape(t *testing.T) {
	// A backslash followed by a semicolon is two specials, escaped once each
	assert.Equal(t, `a\\\;b`, EscapeICS(`a\;b`))
}

func TestEscapeICS_PlainTextUntouched(t *testing.T) {
	assert.Equal(t, "IEM Katowice 2026", EscapeICS("IEM Katowice 2026"))
}

// endregion

// region EscapeXML tests

func TestEscapeXML_AllEntities(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&apos;", EscapeXML(`&<>"'`))
}

func TestEscapeXML_AmpersandFirst(t *testing.T) {
	// A pre-existing entity in the input is itself escaped, never passed
	// through: the ampersand substitution must not touch entities produced
	// by the later substitutions
	assert.Equal(t, "&amp;lt;", EscapeXML("&lt;"))
	assert.Equal(t, "&lt;", EscapeXML("<"))
}

func TestEscapeXML_MixedText(t *testing.T) {
	assert.Equal(t, "Dust &amp; Danger &lt;LAN&gt;", EscapeXML("Dust & Danger <LAN>"))
}

// endregion
