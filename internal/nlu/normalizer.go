package nlu

import (
	"regexp"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/util"
)

// Normalizer prepares raw text for the deterministic matchers. Matching runs
// on the normalized form; ReconstructPhrase maps an extracted span back to
// the original wording so item names keep their casing.
type Normalizer struct {
	language string
}

var normalizers = map[string]*Normalizer{}

func init() {
	for _, lang := range []string{"en", "de"} {
		normalizers[lang] = &Normalizer{language: lang}
	}
}

// NormalizerFor returns the normalizer for a language, falling back to "en".
func NormalizerFor(language string) *Normalizer {
	if n, ok := normalizers[language]; ok {
		return n
	}
	return normalizers["en"]
}

var punctPattern = regexp.MustCompile(`[!?.,;:"()\[\]]+`)

var umlautReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
)

// Normalize lowercases, strips punctuation, folds umlauts (de) and squashes
// whitespace. Digits and word-internal characters survive.
func (n *Normalizer) Normalize(text string) string {
	t := util.Normalize(text)
	if n.language == "de" {
		t = umlautReplacer.Replace(t)
	}
	t = punctPattern.ReplaceAllString(t, " ")
	return util.SquashWhitespace(t)
}

// ReconstructPhrase recovers the original wording of a normalized match: it
// locates the match's word sequence inside the normalized raw text and
// returns the corresponding raw words. Falls back to the match itself when
// the span cannot be located.
func (n *Normalizer) ReconstructPhrase(rawText, normalizedMatch string) string {
	match := strings.Fields(normalizedMatch)
	if len(match) == 0 {
		return normalizedMatch
	}
	rawWords := strings.Fields(rawText)
	normWords := make([]string, len(rawWords))
	for i, w := range rawWords {
		normWords[i] = n.Normalize(w)
	}

	for start := 0; start+len(match) <= len(normWords); start++ {
		ok := true
		for j, m := range match {
			if normWords[start+j] != m {
				ok = false
				break
			}
		}
		if ok {
			reconstructed := strings.Join(rawWords[start:start+len(match)], " ")
			return strings.Trim(reconstructed, ",.!?;: ")
		}
	}
	return normalizedMatch
}
