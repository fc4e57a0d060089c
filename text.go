package refdex

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText collapses all whitespace runs (including tabs and newlines)
// into single spaces and trims leading and trailing whitespace.
// Empty input yields the empty string. The operation is idempotent.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
