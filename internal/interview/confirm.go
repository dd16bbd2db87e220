package interview

import "regexp"

var (
	yesPatternEN = regexp.MustCompile(`\b(yes|yeah|yep|sure|ok(ay)?|of course|do it|go ahead)\b`)
	noPatternEN  = regexp.MustCompile(`\b(no|nope|nah|don't|do not|negative)\b`)

	yesPatternDE = regexp.MustCompile(`\b(ja|jo|jap|klar|sicher|ok(ay)?|mach das|gerne)\b`)
	noPatternDE  = regexp.MustCompile(`\b(nein|ne|noe|nicht|lass es)\b`)

	abortPatternEN = regexp.MustCompile(`\b(stop|cancel|abort|never ?mind|forget it)\b`)
	abortPatternDE = regexp.MustCompile(`\b(stop(p)?|abbrechen|abbruch|egal|vergiss es)\b`)
)

// ParseYesNo classifies a confirmation answer. "no" wins over "yes" so
// "no, don't do it, okay?" declines.
func ParseYesNo(text, language string) (affirmed, recognized bool) {
	yes, no := yesPatternEN, noPatternEN
	if language == "de" {
		yes, no = yesPatternDE, noPatternDE
	}
	if no.MatchString(text) {
		return false, true
	}
	if yes.MatchString(text) {
		return true, true
	}
	return false, false
}

// IsAbortPhrase reports whether a follow-up answer asks to drop the dialog.
func IsAbortPhrase(text, language string) bool {
	if language == "de" {
		return abortPatternDE.MatchString(text)
	}
	return abortPatternEN.MatchString(text)
}
