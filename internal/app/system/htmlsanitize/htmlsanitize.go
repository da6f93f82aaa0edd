// Package htmlsanitize scrubs visitor-supplied text before it is stored or
// mailed. Lead fields are plain text; any markup a visitor pastes into the
// message box is stripped, not rendered.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Scrub removes all HTML from s and returns the remaining text with
// entities decoded, so "R&D" survives a round trip.
func Scrub(s string) string {
	return html.UnescapeString(strict.Sanitize(s))
}

// ScrubLine is Scrub plus newline flattening, for single-line fields like
// name and organization where embedded line breaks are never legitimate.
func ScrubLine(s string) string {
	out := Scrub(s)
	out = strings.ReplaceAll(out, "\r", " ")
	out = strings.ReplaceAll(out, "\n", " ")
	return strings.Join(strings.Fields(out), " ")
}
