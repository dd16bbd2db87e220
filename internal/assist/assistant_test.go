package assist

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/nlu"
	"github.com/voxadev/voxa-assist-go/internal/resolve"
	"github.com/voxadev/voxa-assist-go/internal/services"
	"github.com/voxadev/voxa-assist-go/internal/smarthome"
)

type emptySource struct{}

func (emptySource) CommandMappingsFor(ctx context.Context, ownerID string) ([]domain.CommandMapping, error) {
	return nil, nil
}

type noopPublisher struct{}

func (noopPublisher) PublishState(ctx context.Context, device smarthome.Device, state string) error {
	return nil
}

type panicService struct{}

func (panicService) Info() services.Descriptor {
	return services.Descriptor{ID: "sys.panic", IntendedCommand: domain.CommandChat, Public: true}
}

func (panicService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	panic("boom")
}

func newAssistant(t *testing.T, devices []smarthome.Device, extra ...services.Service) *Assistant {
	t.Helper()
	logger := zap.NewNop()

	maps := resolve.NewCommandMapStore(emptySource{}, nil, logger)
	resolver := resolve.NewResolver(resolve.NewPluginRegistry(logger), maps, logger)

	hub := smarthome.NewRegistryHub(devices, noopPublisher{}, logger)
	resolver.RegisterSystem(services.NewSmartDeviceService(hub, logger))
	resolver.RegisterSystem(services.NewMusicService(logger))
	resolver.RegisterSystem(services.NewChatService())
	resolver.RegisterSystem(services.NewNoResultService(""))
	resolver.RegisterSystem(services.NewAbortService())
	for _, svc := range extra {
		resolver.RegisterSystem(svc)
	}

	store := answers.NewStore(logger)
	chain := nlu.NewChain(nlu.DefaultSteps(resolver.LoadCommands), 0.75, logger)
	collector := interview.NewCollector(store, logger)
	return NewAssistant(chain, resolver, collector, store, nil, nil, logger)
}

func kitchenLight() []smarthome.Device {
	return []smarthome.Device{{ID: "d1", Type: "light", Room: "kitchen", State: "off"}}
}

func TestAnswerSmartDeviceEndToEnd(t *testing.T) {
	a := newAssistant(t, kitchenLight())
	req := domain.NewRequest("turn on the light in the kitchen", "en", "s1")

	result := a.Answer(context.Background(), req)
	if !result.IsSuccess() {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Answer == "" || result.AnswerClean == "" {
		t.Fatalf("answer text missing: %+v", result)
	}
}

func TestAnswerAsksForMissingArtistThenResumes(t *testing.T) {
	a := newAssistant(t, nil)

	// turn 1: the artist is missing, the interview asks
	first := domain.NewRequest("play music", "en", "s1")
	q := a.Answer(context.Background(), first)
	if !q.IsIncomplete() {
		t.Fatalf("expected a question for the artist, got %+v", q)
	}
	if q.IncompleteParam.Name != domain.ParamMusicArtist {
		t.Fatalf("expected music_artist to be asked, got %q", q.IncompleteParam.Name)
	}

	// turn 2: the client echoes the dialog state with the answer text
	second := domain.NewRequest("Queen", "en", "s1")
	second.InputType = domain.InputResponse
	second.InputMiss = q.IncompleteParam.Name
	second.DialogStage = 1
	second.LastCommand, _ = q.CustomInfo["cmd_summary"].(string)

	final := a.Answer(context.Background(), second)
	if !final.IsSuccess() {
		t.Fatalf("follow-up answer should complete the dialog, got %+v", final)
	}
}

func TestAnswerNoMatchIsNoResult(t *testing.T) {
	a := newAssistant(t, nil)
	req := domain.NewRequest("flibber jabber wocky", "en", "s1")

	result := a.Answer(context.Background(), req)
	if result.IsSuccess() {
		t.Fatalf("gibberish must not succeed: %+v", result)
	}
	if result.Answer == "" {
		t.Fatalf("no-result must still answer")
	}
}

func TestAnswerAbortDialog(t *testing.T) {
	a := newAssistant(t, kitchenLight())
	req := domain.NewRequest("never mind", "en", "s1")
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ParamRoom
	req.LastCommand = "smartdevice;;smart_device=light"
	req.DialogStage = 1

	result := a.Answer(context.Background(), req)
	if !result.IsOkay() {
		t.Fatalf("abort must end softly, got %+v", result)
	}
}

func TestAnswerRepeatWithoutHistory(t *testing.T) {
	a := newAssistant(t, nil)
	req := domain.NewRequest("say that again", "en", "s1")

	result := a.Answer(context.Background(), req)
	if !result.IsOkay() {
		t.Fatalf("repeat without history is a soft outcome, got %+v", result)
	}
}

func TestAnswerServicePanicBecomesFailure(t *testing.T) {
	logger := zap.NewNop()
	maps := resolve.NewCommandMapStore(emptySource{}, nil, logger)
	resolver := resolve.NewResolver(resolve.NewPluginRegistry(logger), maps, logger)
	resolver.RegisterSystem(panicService{})

	store := answers.NewStore(logger)
	chain := nlu.NewChain(nlu.DefaultSteps(resolver.LoadCommands), 0.75, logger)
	a := NewAssistant(chain, resolver, interview.NewCollector(store, logger), store, nil, nil, logger)

	req := domain.NewRequest("hello there", "en", "s1")
	result := a.Answer(context.Background(), req)
	if result.Status != domain.StatusFail {
		t.Fatalf("a panicking service must become a hard failure, got %+v", result)
	}
	if result.Answer == "" {
		t.Fatalf("hard failure must still answer")
	}
}

func TestAnswerDirectCommand(t *testing.T) {
	a := newAssistant(t, kitchenLight())
	req := domain.NewRequest("cmd:smartdevice;;smart_device={\"value\":\"light\",\"value_local\":\"light\"};;action={\"value\":\"on\"}", "en", "s1")
	req.InputType = domain.InputDirectCmd

	result := a.Answer(context.Background(), req)
	if !result.IsSuccess() {
		t.Fatalf("direct command must execute, got %+v", result)
	}
}
