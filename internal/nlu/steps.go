package nlu

import (
	"regexp"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/constants"
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// DirectCommandStep handles explicit client command syntax
// ("cmd:<name>;;param=value;;..."), bypassing natural-language matching.
// A direct command is final.
type DirectCommandStep struct{}

func (s *DirectCommandStep) Name() string        { return "direct_command" }
func (s *DirectCommandStep) Authoritative() bool { return true }

func (s *DirectCommandStep) Propose(req *domain.Request) *domain.Proposal {
	text := strings.TrimSpace(req.Text)
	if req.InputType != domain.InputDirectCmd && !strings.HasPrefix(text, "cmd:") {
		return nil
	}
	text = strings.TrimPrefix(text, "cmd:")
	cmd, params := domain.ParseSummary(text)
	if cmd == domain.CommandNoResult || cmd == "" {
		return nil
	}
	return &domain.Proposal{
		Command:    cmd,
		Params:     params,
		Confidence: constants.Interpretation.FullMatchScore,
	}
}

// SlotResponseStep recognizes a follow-up answer to a previous question: the
// client echoes the last command summary and the missing parameter, the text
// is the answer. The previous interpretation is rebuilt and the interview
// applies the new text to the missing slot.
type SlotResponseStep struct{}

func (s *SlotResponseStep) Name() string        { return "slot_response" }
func (s *SlotResponseStep) Authoritative() bool { return true }

func (s *SlotResponseStep) Propose(req *domain.Request) *domain.Proposal {
	if req.InputType != domain.InputResponse || req.LastCommand == "" {
		return nil
	}
	cmd, params := domain.ParseSummary(req.LastCommand)
	if cmd == domain.CommandNoResult {
		return nil
	}
	return &domain.Proposal{
		Command:    cmd,
		Params:     params,
		Confidence: constants.Interpretation.FullMatchScore,
	}
}

// CommandMapLoader supplies the owner-scoped custom command mappings for a
// request (cached per owner by the resolver layer).
type CommandMapLoader func(req *domain.Request) []domain.CommandMapping

// CustomCommandStep matches the trigger phrases of custom commands the
// request's owner registered.
type CustomCommandStep struct {
	Load CommandMapLoader
}

func (s *CustomCommandStep) Name() string        { return "custom_command" }
func (s *CustomCommandStep) Authoritative() bool { return false }

func (s *CustomCommandStep) Propose(req *domain.Request) *domain.Proposal {
	if s.Load == nil {
		return nil
	}
	norm := NormalizerFor(req.Language)
	text := req.TextNorm

	var best *domain.Proposal
	for _, mapping := range s.Load(req) {
		for _, trigger := range mapping.Triggers {
			t := norm.Normalize(trigger)
			if t == "" {
				continue
			}
			var score float64
			switch {
			case text == t:
				score = constants.Interpretation.FullMatchScore
			case strings.Contains(text, t):
				score = 0.8
			default:
				continue
			}
			if best == nil || score > best.Confidence {
				best = &domain.Proposal{
					Command:    mapping.Command,
					Params:     map[string]string{},
					Confidence: score,
				}
			}
		}
	}
	return best
}

// Trigger patterns per language. Matching runs on normalized text, so the
// German patterns use folded umlauts.
var (
	smartDeviceWordsEN = regexp.MustCompile(`\b(light|lights|lamp|heater|heating|thermostat|tv|television|fridge|oven|coffee maker|roller shutter|blinds|outlet|socket|sensor)\b`)
	smartDeviceWordsDE = regexp.MustCompile(`\b(licht(er)?|lampe(n)?|leuchte(n)?|heizung|thermostat|fernseher|kuehlschrank|ofen|kaffeemaschine|roll(l)?aden|jalousie(n)?|steckdose(n)?|sensor(en)?)\b`)
	smartActionWordsEN = regexp.MustCompile(`\b(turn|switch|set|dim|open|close|show|status|state)\b|^smart( )?home`)
	smartActionWordsDE = regexp.MustCompile(`\b(schalte(n)?|mach(e)?|stell(e)?|dimme(n)?|oeffne(n)?|schliess(e|en)?|zeig(e)?|status|zustand)\b|^smart( )?home`)

	musicWordsEN  = regexp.MustCompile(`\b(music|song(s)?|playlist|album)\b`)
	musicWordsDE  = regexp.MustCompile(`\b(musik|lied(er)?|song(s)?|playlist|album)\b`)
	musicPlayEN   = regexp.MustCompile(`\b(play|start|listen to)\b`)
	musicPlayDE   = regexp.MustCompile(`\b(spiel(e|en)?|start(e|en)?|hoer(e|en)?)\b`)
	repeatWordsEN = regexp.MustCompile(`^(repeat( that)?|say (that )?again)$`)
	repeatWordsDE = regexp.MustCompile(`^((sag das |sag es )?noch( ein)?mal|wiederhole(n)?( das)?)$`)
	chatWordsEN   = regexp.MustCompile(`\b(hello|hi|hey|good (morning|evening)|thank(s| you)|how are you)\b`)
	chatWordsDE   = regexp.MustCompile(`\b(hallo|hi|hey|guten (morgen|abend)|danke|wie geht('| e)?s)\b`)
)

// SmartDeviceStep proposes the smart-device command from device/action
// keyword patterns. Device plus action scores above the floor; a device
// word alone is only a weak hint.
type SmartDeviceStep struct{}

func (s *SmartDeviceStep) Name() string        { return "smart_device" }
func (s *SmartDeviceStep) Authoritative() bool { return false }

func (s *SmartDeviceStep) Propose(req *domain.Request) *domain.Proposal {
	deviceWords, actionWords := smartDeviceWordsEN, smartActionWordsEN
	if req.Language == "de" {
		deviceWords, actionWords = smartDeviceWordsDE, smartActionWordsDE
	}
	if !deviceWords.MatchString(req.TextNorm) {
		return nil
	}
	score := constants.Interpretation.KeywordScore
	if actionWords.MatchString(req.TextNorm) {
		score = 0.9
	}
	return &domain.Proposal{
		Command:    domain.CommandSmartDevice,
		Params:     map[string]string{},
		Confidence: score,
	}
}

// MusicStep proposes the music search command from play/music keywords.
type MusicStep struct{}

func (s *MusicStep) Name() string        { return "music" }
func (s *MusicStep) Authoritative() bool { return false }

func (s *MusicStep) Propose(req *domain.Request) *domain.Proposal {
	musicWords, playWords := musicWordsEN, musicPlayEN
	if req.Language == "de" {
		musicWords, playWords = musicWordsDE, musicPlayDE
	}
	hasMusic := musicWords.MatchString(req.TextNorm)
	hasPlay := playWords.MatchString(req.TextNorm)
	switch {
	case hasMusic && hasPlay:
		return &domain.Proposal{
			Command:    domain.CommandMusicSearch,
			Params:     map[string]string{},
			Confidence: 0.85,
		}
	case hasMusic:
		return &domain.Proposal{
			Command:    domain.CommandMusicSearch,
			Params:     map[string]string{},
			Confidence: constants.Interpretation.KeywordScore,
		}
	default:
		return nil
	}
}

// RepeatStep recognizes the repeat-last-command request.
type RepeatStep struct{}

func (s *RepeatStep) Name() string        { return "repeat" }
func (s *RepeatStep) Authoritative() bool { return false }

func (s *RepeatStep) Propose(req *domain.Request) *domain.Proposal {
	words := repeatWordsEN
	if req.Language == "de" {
		words = repeatWordsDE
	}
	if !words.MatchString(req.TextNorm) {
		return nil
	}
	return &domain.Proposal{
		Command:    domain.CommandRepeat,
		Params:     map[string]string{},
		Confidence: 0.9,
	}
}

// ChatFallbackStep catches small talk with a deliberately low score so any
// real command wins.
type ChatFallbackStep struct{}

func (s *ChatFallbackStep) Name() string        { return "chat_fallback" }
func (s *ChatFallbackStep) Authoritative() bool { return false }

func (s *ChatFallbackStep) Propose(req *domain.Request) *domain.Proposal {
	words := chatWordsEN
	if req.Language == "de" {
		words = chatWordsDE
	}
	if !words.MatchString(req.TextNorm) {
		return nil
	}
	return &domain.Proposal{
		Command:    domain.CommandChat,
		Params:     map[string]string{},
		Confidence: constants.Interpretation.ChatScore,
	}
}

// DefaultSteps is the production step order.
func DefaultSteps(loadCommands CommandMapLoader) []Step {
	return []Step{
		&DirectCommandStep{},
		&SlotResponseStep{},
		&CustomCommandStep{Load: loadCommands},
		&SmartDeviceStep{},
		&MusicStep{},
		&RepeatStep{},
		&ChatFallbackStep{},
	}
}
