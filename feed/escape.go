/* escape.go
 * Contains the format-specific text escapers. Both run as a single pass so
 * characters introduced by one substitution are never re-escaped.
 */

package feed

import "strings"

// icsReplacer escapes the RFC 5545 TEXT specials: backslash, semicolon and
// comma each get a backslash prefix. Nothing else is altered.
var icsReplacer = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
)

// xmlReplacer escapes the five XML specials, ampersand first.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeICS escapes a free-text value for use in an ICS property
func EscapeICS(s string) string {
	return icsReplacer.Replace(s)
}

// EscapeXML escapes a value for use in XML text content or attributes
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
