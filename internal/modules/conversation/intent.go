// README: Keyword-based intent classification for non-destination utterances.
package conversation

import "strings"

type Intent int

const (
	IntentUnclassified Intent = iota
	IntentGreeting
	IntentThanks
	IntentOffTopic
)

// The keyword sets are plain data so the classifier stays a pure function
// over them.
var (
	greetingKeywords = []string{"hi", "hello", "hey", "good morning", "good evening", "how are you"}
	thanksKeywords   = []string{"thank you", "thanks", "thankyou", "thx", "appreciate", "grateful"}
	offTopicKeywords = []string{"weather", "news", "joke", "movie", "recipe", "code", "sports"}
)

// Classify categorizes text by case-insensitive substring membership.
// When several sets match, Greeting wins over Thanks, Thanks over OffTopic.
// Unmatched text is IntentUnclassified; Classify never fails.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, greetingKeywords):
		return IntentGreeting
	case containsAny(lower, thanksKeywords):
		return IntentThanks
	case containsAny(lower, offTopicKeywords):
		return IntentOffTopic
	default:
		return IntentUnclassified
	}
}

// isIntentPhrase reports whether text is built from intent keywords rather
// than a place name. Unlike Classify it matches single-word keywords only
// against whole words, so "Chicago" is not mistaken for a greeting.
func isIntentPhrase(text string) bool {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	for _, set := range [][]string{greetingKeywords, thanksKeywords, offTopicKeywords} {
		for _, kw := range set {
			if strings.Contains(kw, " ") {
				if strings.Contains(lower, kw) {
					return true
				}
				continue
			}
			for _, w := range words {
				if w == kw {
					return true
				}
			}
		}
	}
	return false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
