package interview

import (
	"testing"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

func newCollector() *Collector {
	return NewCollector(answers.NewStore(zap.NewNop()), zap.NewNop())
}

func newInterp(text string, cmd domain.Command) *domain.Interpretation {
	req := domain.NewRequest(text, "en", "s1")
	req.TextNorm = text
	return domain.NewInterpretation(req, cmd, nil, 1.0)
}

func smartDeviceParams() []domain.Parameter {
	return []domain.Parameter{
		domain.NewRequiredParameter(domain.ParamSmartDevice, answers.KeyAskDevice),
		domain.NewRequiredParameter(domain.ParamAction, ""),
		domain.NewOptionalParameter(domain.ParamRoom, ""),
	}
}

func TestCollectRequiredAllPresent(t *testing.T) {
	interp := newInterp("turn on the light in the kitchen", domain.CommandSmartDevice)

	if q := newCollector().CollectRequired(interp, smartDeviceParams()); q != nil {
		t.Fatalf("expected no question, got %+v", q)
	}
	device := interp.RequiredParameter(domain.ParamSmartDevice)
	if device.ValueString() != "light" {
		t.Fatalf("expected built light param, got %q", device.ValueString())
	}
	room := interp.RequiredParameter(domain.ParamRoom)
	if room.ValueString() != "kitchen" {
		t.Fatalf("expected built kitchen param, got %q", room.ValueString())
	}
}

func TestCollectRequiredAsksInDeclaredOrder(t *testing.T) {
	declared := []domain.Parameter{
		domain.NewRequiredParameter(domain.ParamMusicArtist, answers.KeyAskArtist),
		domain.NewRequiredParameter(domain.ParamMusicService, ""),
	}
	interp := newInterp("play something", domain.CommandMusicSearch)

	q := newCollector().CollectRequired(interp, declared)
	if q == nil || !q.IsIncomplete() {
		t.Fatalf("expected a question, got %+v", q)
	}
	if q.IncompleteParam == nil || q.IncompleteParam.Name != domain.ParamMusicArtist {
		t.Fatalf("first missing declared param must be asked, got %+v", q.IncompleteParam)
	}
	if q.ResponseType != domain.ResponseQuestion {
		t.Fatalf("expected question response type, got %q", q.ResponseType)
	}
	if q.Answer == "" {
		t.Fatalf("question must carry an answer text")
	}
}

func TestCollectRequiredGuessFillsAction(t *testing.T) {
	interp := newInterp("the lamp", domain.CommandSmartDevice)

	if q := newCollector().CollectRequired(interp, smartDeviceParams()); q != nil {
		t.Fatalf("action should be guessed, not asked: %+v", q)
	}
	action := interp.RequiredParameter(domain.ParamAction)
	if action.ValueString() != "toggle" {
		t.Fatalf("expected toggle guess, got %q", action.ValueString())
	}
}

func TestApplyResponseFillsMissingParam(t *testing.T) {
	interp := newInterp("in the kitchen", domain.CommandSmartDevice)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ParamRoom
	req.DialogStage = 1

	if aborted := newCollector().ApplyResponse(interp); aborted != nil {
		t.Fatalf("expected no abort, got %+v", aborted)
	}
	room := interp.RequiredParameter(domain.ParamRoom)
	if room.ValueString() != "kitchen" {
		t.Fatalf("follow-up answer must fill the asked param, got %q", room.ValueString())
	}
}

func TestApplyResponseConfirmYes(t *testing.T) {
	interp := newInterp("yes please", domain.CommandSmartDevice)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ConfirmTag("use_first_device")
	req.DialogStage = 1

	if aborted := newCollector().ApplyResponse(interp); aborted != nil {
		t.Fatalf("expected no abort, got %+v", aborted)
	}
	if req.ConfirmStatus("use_first_device") != domain.ConfirmAffirmed {
		t.Fatalf("expected affirmed confirmation")
	}
}

func TestApplyResponseConfirmNo(t *testing.T) {
	interp := newInterp("no dont", domain.CommandSmartDevice)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ConfirmTag("use_first_device")
	req.DialogStage = 1

	newCollector().ApplyResponse(interp)
	if req.ConfirmStatus("use_first_device") != domain.ConfirmDeclined {
		t.Fatalf("expected declined confirmation")
	}
}

func TestApplyResponseUnrecognizedConfirmStaysUnasked(t *testing.T) {
	interp := newInterp("the blue one maybe", domain.CommandSmartDevice)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ConfirmTag("use_first_device")
	req.DialogStage = 1

	newCollector().ApplyResponse(interp)
	if req.ConfirmStatus("use_first_device") != domain.ConfirmUnasked {
		t.Fatalf("unrecognized answer must leave the confirmation unasked")
	}
}

func TestApplyResponseAbortPhrase(t *testing.T) {
	interp := newInterp("never mind", domain.CommandSmartDevice)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ParamRoom
	req.DialogStage = 1

	aborted := newCollector().ApplyResponse(interp)
	if aborted == nil || !aborted.IsOkay() {
		t.Fatalf("abort phrase must end the dialog softly, got %+v", aborted)
	}
	if aborted.ContextTag != string(domain.CommandAbort) {
		t.Fatalf("expected abort context, got %q", aborted.ContextTag)
	}
}

func TestApplyResponseStageCeilingAborts(t *testing.T) {
	interp := newInterp("still not an answer", domain.CommandSmartDevice)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ConfirmTag("use_first_device")
	req.DialogStage = 4

	aborted := newCollector().ApplyResponse(interp)
	if aborted == nil || !aborted.IsOkay() {
		t.Fatalf("exceeding the retry ceiling must abort, got %+v", aborted)
	}
}

func TestAskCeilingOnRepeatedQuestion(t *testing.T) {
	interp := newInterp("mumble", domain.CommandMusicSearch)
	req := interp.Request
	req.InputType = domain.InputResponse
	req.InputMiss = domain.ParamMusicArtist
	req.DialogStage = 3

	declared := []domain.Parameter{
		domain.NewRequiredParameter(domain.ParamMusicArtist, answers.KeyAskArtist),
	}
	// follow-up did not extract anything and the stage is at the ceiling
	interp.SetParam(domain.ParamMusicArtist, "")
	result := newCollector().CollectRequired(interp, declared)
	if result == nil {
		t.Fatalf("expected a result at the ceiling")
	}
	if result.IsIncomplete() {
		t.Fatalf("at the ceiling the dialog must abort, not re-ask: %+v", result)
	}
}

func TestParseYesNoPrecedence(t *testing.T) {
	affirmed, recognized := ParseYesNo("no, don't do it, okay?", "en")
	if !recognized || affirmed {
		t.Fatalf("no must win over yes")
	}
	affirmed, recognized = ParseYesNo("ja klar", "de")
	if !recognized || !affirmed {
		t.Fatalf("expected German yes")
	}
	if _, recognized := ParseYesNo("the red one", "en"); recognized {
		t.Fatalf("free text must not be recognized as yes/no")
	}
}
