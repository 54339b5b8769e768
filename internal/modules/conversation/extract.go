// README: Best-effort destination extraction via an ordered matcher chain.
package conversation

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// destinationPatterns are tried in order, first accepted match wins. Later
// entries are strictly more permissive fallbacks; the last one captures the
// trailing clause of the whole utterance.
var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)trip to ([a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i)visit ([a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i)go to ([a-zA-Z\s]+)`),
	regexp.MustCompile(`([a-zA-Z\s]+)$`),
}

// maxDestinationWords rejects most non-place phrases the catch-all pattern
// would capture. Known limitation: legitimate place names longer than three
// words are rejected too.
const maxDestinationWords = 3

// ExtractDestination returns a trimmed, title-cased place name parsed from
// text, or "" when no pattern yields an accepted candidate. A candidate that
// fails a filter falls through to the next pattern. Candidates made of
// greeting/thanks/off-topic keywords are never place names; rejecting them
// here keeps the catch-all pattern from swallowing utterances the intent
// branches must handle.
func ExtractDestination(text string) string {
	for _, re := range destinationPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := titleCase(strings.TrimSpace(m[1]))
		if candidate == "" {
			continue
		}
		if isIntentPhrase(candidate) {
			continue
		}
		if len(strings.Fields(candidate)) <= maxDestinationWords {
			return candidate
		}
	}
	return ""
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
