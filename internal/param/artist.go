package param

import (
	"regexp"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/nlu"
)

var (
	artistByPatternEN = regexp.MustCompile(`\b(by|from|of) (.+)$`)
	artistByPatternDE = regexp.MustCompile(`\b(von|vom) (.+)$`)

	// phase two: "<artist> songs", "<artist> musik"
	artistLeadPatternEN = regexp.MustCompile(`(?:play|start|listen to) (.+?) (songs?|music|tracks?)\b`)
	artistLeadPatternDE = regexp.MustCompile(`(?:spiel(?:e)?|starte) (.+?) (songs?|lieder|musik)\b`)

	artistTailNoise = regexp.MustCompile(`\b(please|bitte|now|jetzt)\b`)
)

// MusicArtistHandler extracts the artist of a music request. The service
// name is claimed first so "play queen on spotify" never yields the artist
// "queen on spotify".
type MusicArtistHandler struct {
	base
}

func init() {
	Register(domain.ParamMusicArtist, func() Handler { return &MusicArtistHandler{} })
}

func (h *MusicArtistHandler) Extract(input string) string {
	if pr := h.req.StoredParameterResult(domain.ParamMusicArtist); pr != nil {
		h.found = pr.Found
		return pr.Extracted
	}

	optimized := CleanInput(h.req, domain.ParamMusicService, input)

	byPattern, leadPattern := artistByPatternEN, artistLeadPatternEN
	if h.language == "de" {
		byPattern, leadPattern = artistByPatternDE, artistLeadPatternDE
	}

	artist := ""
	h.found = ""
	if m := byPattern.FindStringSubmatch(optimized); m != nil {
		artist = m[2]
		h.found = strings.TrimSpace(m[0])
	} else if m := leadPattern.FindStringSubmatch(optimized); m != nil {
		artist = m[1]
		h.found = strings.TrimSpace(m[1])
	}
	artist = strings.TrimSpace(artistTailNoise.ReplaceAllString(artist, ""))

	extracted := ""
	if artist != "" {
		// recover the user's original casing for display
		extracted = nlu.NormalizerFor(h.language).ReconstructPhrase(h.req.Text, artist)
	}
	h.req.StoreParameterResult(&domain.ParameterResult{
		Name:      domain.ParamMusicArtist,
		Extracted: extracted,
		Found:     h.found,
	})
	return extracted
}

func (h *MusicArtistHandler) Validate(value string) bool {
	return validateBuilt(value)
}

func (h *MusicArtistHandler) Build(value string) (string, error) {
	return buildValue(map[string]any{
		domain.DataValue:      value,
		domain.DataValueLocal: value,
	})
}

func (h *MusicArtistHandler) Remove(input, found string) string {
	prefix := `\b(by |from |of )?`
	if h.language == "de" {
		prefix = `\b(von |vom )?`
	}
	return removeFirst(input, prefix+regexp.QuoteMeta(found))
}

func (h *MusicArtistHandler) ResponseTweak(input string) string {
	input = strings.TrimSpace(input)
	if h.language == "de" {
		return strings.TrimPrefix(input, "von ")
	}
	input = strings.TrimPrefix(input, "by ")
	return strings.TrimPrefix(input, "from ")
}
