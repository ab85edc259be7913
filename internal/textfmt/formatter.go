// Package textfmt normalizes assistant reply markup before it is stored and
// rendered: canned templates and backend replies both pass through it so the
// client sees one consistent dialect.
package textfmt

import (
	"regexp"
	"strings"
)

var (
	// **Header**: text on the same line. These act as section headers and
	// need a blank line separating them from the preceding paragraph.
	boldHeaderRe = regexp.MustCompile(`^\s*\*\*[^*]+\*\*\s*:`)

	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// Format applies the display normalization rules in order: blank line before
// bold section headers, bullet passthrough, newline collapse, outer trim.
// It is idempotent: Format(Format(x)) == Format(x).
func Format(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+4)
	for _, line := range lines {
		if boldHeaderRe.MatchString(line) && len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		// Bullet lines ("• ...") pass through unchanged.
		out = append(out, line)
	}

	result := strings.Join(out, "\n")
	result = multiNewlineRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
