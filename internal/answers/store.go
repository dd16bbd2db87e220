package answers

import (
	"math/rand"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Store resolves answer keys to localized, wildcard-filled text. Keys carry
// several phrasings; Get picks one so repeated answers do not sound canned.
type Store interface {
	Get(language, key string, args ...string) string
}

type memoryStore struct {
	pool   map[string]map[string][]string
	logger *zap.Logger
}

// NewStore returns the built-in answer pool.
func NewStore(logger *zap.Logger) Store {
	return &memoryStore{pool: answerPool, logger: logger}
}

// Get resolves a key for a language, substituting <1>, <2>, <3> with args.
// Unknown keys fall back to English, then to the key itself so a missing
// translation never breaks a response.
func (s *memoryStore) Get(language, key string, args ...string) string {
	variants := s.variants(language, key)
	if len(variants) == 0 {
		s.logger.Warn("missing answer key",
			zap.String("key", key),
			zap.String("language", language))
		return key
	}
	answer := variants[rand.Intn(len(variants))]
	for i, arg := range args {
		if i >= 3 {
			break
		}
		wildcard := "<" + string(rune('1'+i)) + ">"
		answer = strings.ReplaceAll(answer, wildcard, arg)
	}
	return answer
}

func (s *memoryStore) variants(language, key string) []string {
	if byKey, ok := s.pool[language]; ok {
		if v, ok := byKey[key]; ok && len(v) > 0 {
			return v
		}
	}
	if language != "en" {
		if v, ok := s.pool["en"][key]; ok {
			return v
		}
	}
	return nil
}

// Clean strips markup from an answer so voice clients get plain speakable
// text while display clients keep the original.
func Clean(answer string) string {
	if !strings.ContainsAny(answer, "<>") {
		return answer
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(answer))
	if err != nil {
		return answer
	}
	return strings.TrimSpace(doc.Text())
}
