package param

import (
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Canonical device actions.
const (
	ActionOn       = "on"
	ActionOff      = "off"
	ActionSet      = "set"
	ActionShow     = "show"
	ActionToggle   = "toggle"
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// Patterns are ordered: more specific phrasings first so "turn off" never
// matches the bare "on" inside it.
var actionPatternsEN = []struct {
	expr      string
	canonical string
}{
	{`\b(turn off|switch off|shut off|deactivate|power off)\b|\boff\b`, ActionOff},
	{`\b(turn on|switch on|activate|power on)\b|\bon\b`, ActionOn},
	{`\b(set|change) (.* )?to\b|\bset\b`, ActionSet},
	{`\b(show|status|state|what is|how warm|how cold)\b`, ActionShow},
	{`\b(increase|raise|brighter|warmer)\b`, ActionIncrease},
	{`\b(decrease|lower|dim|darker|colder)\b`, ActionDecrease},
	{`\btoggle\b`, ActionToggle},
	{`\bopen\b`, ActionOn},
	{`\bclose\b`, ActionOff},
}

var actionPatternsDE = []struct {
	expr      string
	canonical string
}{
	{`\b(aus|ausschalten|abschalten|deaktiviere(n)?)\b`, ActionOff},
	{`\b(an|ein|einschalten|anschalten|aktiviere(n)?)\b`, ActionOn},
	{`\b(stell(e)?|setz(e)?)( .*)? auf\b`, ActionSet},
	{`\b(zeig(e)?|status|zustand|wie warm|wie kalt)\b`, ActionShow},
	{`\b(erhoehe(n)?|heller|waermer)\b`, ActionIncrease},
	{`\b(verringere|senke(n)?|dimme(n)?|dunkler|kaelter)\b`, ActionDecrease},
	{`\b(umschalten|wechsle)\b`, ActionToggle},
	{`\b(oeffne(n)?|hoch)\b`, ActionOn},
	{`\b(schliess(e|en)|runter)\b`, ActionOff},
}

// ActionHandler extracts what to do with a device.
type ActionHandler struct {
	base
}

func init() {
	Register(domain.ParamAction, func() Handler { return &ActionHandler{} })
}

func (h *ActionHandler) Extract(input string) string {
	if pr := h.req.StoredParameterResult(domain.ParamAction); pr != nil {
		h.found = pr.Found
		return pr.Extracted
	}

	patterns := actionPatternsEN
	if h.language == "de" {
		patterns = actionPatternsDE
	}

	extracted := ""
	h.found = ""
	for _, p := range patterns {
		match := findFirst(input, p.expr)
		if match == "" {
			continue
		}
		h.found = match
		extracted = p.canonical
		break
	}

	h.req.StoreParameterResult(&domain.ParameterResult{
		Name:      domain.ParamAction,
		Extracted: extracted,
		Found:     h.found,
	})
	return extracted
}

// Guess falls back to toggle, the most reasonable default for a bare device
// request ("lights" usually means "lights on/off").
func (h *ActionHandler) Guess(input string) string {
	return ActionToggle
}

func (h *ActionHandler) Validate(value string) bool {
	return validateBuilt(value)
}

func (h *ActionHandler) Build(value string) (string, error) {
	return buildValue(map[string]any{domain.DataValue: value})
}
