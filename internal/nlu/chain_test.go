package nlu

import (
	"testing"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/domain"
)

type fixedStep struct {
	name          string
	proposal      *domain.Proposal
	authoritative bool
	calls         int
}

func (s *fixedStep) Name() string        { return s.name }
func (s *fixedStep) Authoritative() bool { return s.authoritative }
func (s *fixedStep) Propose(req *domain.Request) *domain.Proposal {
	s.calls++
	if s.proposal == nil {
		return nil
	}
	p := *s.proposal
	return &p
}

func newChain(floor float64, steps ...Step) *Chain {
	return NewChain(steps, floor, zap.NewNop())
}

func TestChainFirstAboveFloorWins(t *testing.T) {
	weak := &fixedStep{name: "weak", proposal: &domain.Proposal{Command: domain.CommandChat, Confidence: 0.4}}
	strong := &fixedStep{name: "strong", proposal: &domain.Proposal{Command: domain.CommandSmartDevice, Confidence: 0.9}}
	never := &fixedStep{name: "never", proposal: &domain.Proposal{Command: domain.CommandMusicSearch, Confidence: 1.0}}

	chain := newChain(0.75, weak, strong, never)
	req := domain.NewRequest("turn on the light", "en", "s1")

	it := chain.Interpret(req)
	if it.Command != domain.CommandSmartDevice {
		t.Fatalf("expected smartdevice, got %q", it.Command)
	}
	if never.calls != 0 {
		t.Fatalf("steps after the winner must not run")
	}
	if len(it.Alternatives) != 1 {
		t.Fatalf("expected the weak proposal as alternative, got %d", len(it.Alternatives))
	}
}

func TestChainAuthoritativeStopsImmediately(t *testing.T) {
	direct := &fixedStep{
		name:          "direct",
		authoritative: true,
		proposal:      &domain.Proposal{Command: domain.CommandOpenLink, Confidence: 0.1},
	}
	later := &fixedStep{name: "later", proposal: &domain.Proposal{Command: domain.CommandChat, Confidence: 1.0}}

	it := newChain(0.75, direct, later).Interpret(domain.NewRequest("x", "en", "s1"))
	if it.Command != domain.CommandOpenLink {
		t.Fatalf("authoritative proposal must win regardless of confidence, got %q", it.Command)
	}
	if later.calls != 0 {
		t.Fatalf("chain must halt after an authoritative step")
	}
}

func TestChainBestBelowFloor(t *testing.T) {
	a := &fixedStep{name: "a", proposal: &domain.Proposal{Command: domain.CommandChat, Confidence: 0.4}}
	b := &fixedStep{name: "b", proposal: &domain.Proposal{Command: domain.CommandMusicSearch, Confidence: 0.6}}

	it := newChain(0.75, a, b).Interpret(domain.NewRequest("something", "en", "s1"))
	if it.Command != domain.CommandMusicSearch {
		t.Fatalf("expected best sub-floor proposal, got %q", it.Command)
	}
	if it.Certainty != 0.6 {
		t.Fatalf("expected certainty 0.6, got %v", it.Certainty)
	}
}

func TestChainNoProposals(t *testing.T) {
	empty := &fixedStep{name: "empty"}
	it := newChain(0.75, empty).Interpret(domain.NewRequest("gibberish", "en", "s1"))
	if it.Command != domain.CommandNoResult {
		t.Fatalf("expected no_result, got %q", it.Command)
	}
}

func TestChainDeterministic(t *testing.T) {
	steps := func() []Step {
		return []Step{
			&SmartDeviceStep{},
			&MusicStep{},
			&ChatFallbackStep{},
		}
	}
	first := NewChain(steps(), 0.75, zap.NewNop()).Interpret(domain.NewRequest("turn on the light in the kitchen", "en", "s1"))
	for i := 0; i < 10; i++ {
		got := NewChain(steps(), 0.75, zap.NewNop()).Interpret(domain.NewRequest("turn on the light in the kitchen", "en", "s1"))
		if got.Command != first.Command || got.Certainty != first.Certainty {
			t.Fatalf("interpretation not deterministic: %v vs %v", got, first)
		}
	}
	if first.Command != domain.CommandSmartDevice {
		t.Fatalf("expected smartdevice, got %q", first.Command)
	}
}

func TestDirectCommandStep(t *testing.T) {
	req := domain.NewRequest("cmd:smartdevice;;room=kitchen", "en", "s1")
	p := (&DirectCommandStep{}).Propose(req)
	if p == nil || p.Command != domain.CommandSmartDevice {
		t.Fatalf("expected direct command proposal, got %+v", p)
	}
	if p.Params["room"] != "kitchen" {
		t.Fatalf("expected room param, got %v", p.Params)
	}

	if p := (&DirectCommandStep{}).Propose(domain.NewRequest("turn on the light", "en", "s1")); p != nil {
		t.Fatalf("plain text must not trigger direct command step")
	}
}

func TestSlotResponseStepRebuildsLastCommand(t *testing.T) {
	req := domain.NewRequest("kitchen", "en", "s1")
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ParamRoom
	req.LastCommand = "smartdevice;;action=on;;smart_device=light"

	p := (&SlotResponseStep{}).Propose(req)
	if p == nil || p.Command != domain.CommandSmartDevice {
		t.Fatalf("expected rebuilt smartdevice command, got %+v", p)
	}
	if p.Params[domain.ParamAction] != "on" || p.Params[domain.ParamSmartDevice] != "light" {
		t.Fatalf("expected carried params, got %v", p.Params)
	}
}

func TestCustomCommandStepTriggerMatch(t *testing.T) {
	load := func(req *domain.Request) []domain.CommandMapping {
		return []domain.CommandMapping{
			{
				Command:  domain.Command("user1.good_night"),
				Services: []string{"user1.lights_off"},
				Triggers: []string{"good night"},
			},
		}
	}
	step := &CustomCommandStep{Load: load}

	req := domain.NewRequest("Good night!", "en", "s1")
	req.TextNorm = NormalizerFor("en").Normalize(req.Text)
	p := step.Propose(req)
	if p == nil || p.Command != domain.Command("user1.good_night") {
		t.Fatalf("expected custom command match, got %+v", p)
	}
	if p.Confidence != 1.0 {
		t.Fatalf("full trigger match must score 1.0, got %v", p.Confidence)
	}

	req2 := domain.NewRequest("well good night then", "en", "s1")
	req2.TextNorm = NormalizerFor("en").Normalize(req2.Text)
	p2 := step.Propose(req2)
	if p2 == nil || p2.Confidence >= 1.0 {
		t.Fatalf("contains match must score below full match, got %+v", p2)
	}
}
