// Package risk flags legally risky phrases in extracted document text.
// The scan is a fixed-keyword, case-insensitive substring match and makes no
// external calls.
package risk

import "strings"

// riskyKeywords is the fixed list of phrases the scanner looks for.
var riskyKeywords = []string{
	"penalty", "termination", "breach", "fine",
	"automatic renewal", "binding arbitration",
	"liquidated damages", "non-compete", "non-disclosure",
	"late fee", "without notice", "waiver of rights",
	"exclusive jurisdiction", "governing law", "intellectual property",
}

// Scan returns the set of risky phrases found in text. Matching is
// case-insensitive; each phrase appears at most once in the result regardless
// of how many times it occurs. Order of the returned slice is unspecified.
func Scan(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, kw := range riskyKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// Keywords returns a copy of the phrase list the scanner matches against.
func Keywords() []string {
	out := make([]string, len(riskyKeywords))
	copy(out, riskyKeywords)
	return out
}
