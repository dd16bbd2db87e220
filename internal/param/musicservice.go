package param

import (
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Known music services.
const (
	MusicServiceSpotify    = "spotify"
	MusicServiceAppleMusic = "apple_music"
	MusicServiceYouTube    = "youtube"
	MusicServiceDeezer     = "deezer"
	MusicServiceSoundCloud = "soundcloud"
)

var musicServicePatterns = []struct {
	expr      string
	canonical string
}{
	{`\bspotify\b`, MusicServiceSpotify},
	{`\bapple music\b`, MusicServiceAppleMusic},
	{`\byou( )?tube( music)?\b`, MusicServiceYouTube},
	{`\bdeezer\b`, MusicServiceDeezer},
	{`\bsound( )?cloud\b`, MusicServiceSoundCloud},
}

// MusicServiceHandler extracts the streaming service named in a music
// request ("play queen on spotify").
type MusicServiceHandler struct {
	base
}

func init() {
	Register(domain.ParamMusicService, func() Handler { return &MusicServiceHandler{} })
}

func (h *MusicServiceHandler) Extract(input string) string {
	if pr := h.req.StoredParameterResult(domain.ParamMusicService); pr != nil {
		h.found = pr.Found
		return pr.Extracted
	}

	extracted := ""
	h.found = ""
	for _, p := range musicServicePatterns {
		match := findFirst(input, p.expr)
		if match == "" {
			continue
		}
		h.found = match
		extracted = p.canonical
		break
	}

	h.req.StoreParameterResult(&domain.ParameterResult{
		Name:      domain.ParamMusicService,
		Extracted: extracted,
		Found:     h.found,
	})
	return extracted
}

func (h *MusicServiceHandler) Validate(value string) bool {
	return validateBuilt(value)
}

func (h *MusicServiceHandler) Build(value string) (string, error) {
	return buildValue(map[string]any{domain.DataValue: value})
}

// Remove also drops the "on"/"auf" preposition in front of the service name.
func (h *MusicServiceHandler) Remove(input, found string) string {
	if h.language == "de" {
		return removeFirst(input, `\b(auf |bei |mit )?`+found+`\b`)
	}
	return removeFirst(input, `\b(on |with |using )?`+found+`\b`)
}
