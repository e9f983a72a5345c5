package classifier

import (
	"strings"
	"unicode"
)

// NormalizeIntent maps a raw model-returned intent string onto the closed
// intent set: uppercase, strip everything but letters and underscores, check
// membership, then the synonym table, else GENERAL. Idempotent.
func NormalizeIntent(raw string) Intent {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r):
			return unicode.ToUpper(r)
		case r == '_':
			return r
		default:
			return -1
		}
	}, raw)

	for _, intent := range AllIntents() {
		if cleaned == string(intent) {
			return intent
		}
	}
	if intent, ok := intentSynonyms[cleaned]; ok {
		return intent
	}
	return IntentGeneral
}

// IsGreeting reports whether the message is a greeting: case-insensitive
// equality or prefix match against the fixed greeting list. "well hello"
// does not match because the greeting is not a prefix.
func IsGreeting(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, g := range greetings {
		if msg == g || strings.HasPrefix(msg, g+" ") || strings.HasPrefix(msg, g+",") || strings.HasPrefix(msg, g+"!") {
			return true
		}
	}
	return false
}

// IsHelpRequest reports whether the message asks what the assistant can do:
// case-insensitive substring match against the fixed help-phrase list.
func IsHelpRequest(message string) bool {
	msg := strings.ToLower(message)
	for _, phrase := range helpPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
