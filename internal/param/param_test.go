package param

import (
	"strings"
	"testing"

	"github.com/voxadev/voxa-assist-go/internal/domain"
)

func newReq(text, language string) *domain.Request {
	req := domain.NewRequest(text, language, "test-session")
	req.TextNorm = strings.ToLower(text)
	return req
}

func TestDeviceExtraction(t *testing.T) {
	req := newReq("turn on the light in the kitchen", "en")
	pr := Resolve(req, domain.ParamSmartDevice, req.TextNorm)
	if pr == nil || pr.Extracted != DeviceLight {
		t.Fatalf("expected light, got %+v", pr)
	}
	if pr.Found != "light" {
		t.Fatalf("expected claimed span 'light', got %q", pr.Found)
	}
}

func TestDeviceExtractionWithIndex(t *testing.T) {
	req := newReq("switch off lamp 2", "en")
	pr := Resolve(req, domain.ParamSmartDevice, req.TextNorm)
	if pr == nil || pr.Extracted != DeviceLight+";2" {
		t.Fatalf("expected light;2, got %+v", pr)
	}
}

func TestDeviceExtractionGerman(t *testing.T) {
	req := newReq("schalte die heizung im schlafzimmer aus", "de")
	pr := Resolve(req, domain.ParamSmartDevice, req.TextNorm)
	if pr == nil || pr.Extracted != DeviceHeater {
		t.Fatalf("expected heater, got %+v", pr)
	}
}

func TestExtractionIdempotentPerRequest(t *testing.T) {
	req := newReq("turn on the light", "en")
	first := Resolve(req, domain.ParamSmartDevice, req.TextNorm)

	// same request, different input: the cached result must win
	second := Resolve(req, domain.ParamSmartDevice, "switch off the heater")
	if second.Extracted != first.Extracted || second.Found != first.Found {
		t.Fatalf("repeated extraction changed the result: %+v vs %+v", first, second)
	}
}

func TestRoomExtraction(t *testing.T) {
	req := newReq("turn on the light in the living room", "en")
	pr := Resolve(req, domain.ParamRoom, req.TextNorm)
	if pr == nil || pr.Extracted != RoomLivingRoom {
		t.Fatalf("expected livingroom, got %+v", pr)
	}
}

func TestValueDoesNotStealRoomIndex(t *testing.T) {
	// "bedroom 2" carries an index; the value extractor must not claim the 2
	req := newReq("set the heater in bedroom 2 to 21 degrees", "en")

	value := Resolve(req, domain.ParamDeviceValue, req.TextNorm)
	if value == nil || value.Extracted != "21;"+ValueTypeTemperature {
		t.Fatalf("expected 21 degrees as temperature, got %+v", value)
	}

	room := Resolve(req, domain.ParamRoom, req.TextNorm)
	if room == nil || room.Extracted != RoomBedroom+";2" {
		t.Fatalf("expected bedroom;2, got %+v", room)
	}
}

func TestValuePercent(t *testing.T) {
	req := newReq("dim the light to 50 %", "en")
	pr := Resolve(req, domain.ParamDeviceValue, req.TextNorm)
	if pr == nil || pr.Extracted != "50;"+ValueTypePercent {
		t.Fatalf("expected 50 percent, got %+v", pr)
	}

	// no space before the unit
	glued := newReq("dim the light to 50%", "en")
	pr = Resolve(glued, domain.ParamDeviceValue, glued.TextNorm)
	if pr == nil || pr.Extracted != "50;"+ValueTypePercent {
		t.Fatalf("expected 50 percent for glued unit, got %+v", pr)
	}
}

func TestActionOffBeatsOn(t *testing.T) {
	// "turn off" contains "on"; the off pattern must win
	req := newReq("turn off the light", "en")
	pr := Resolve(req, domain.ParamAction, req.TextNorm)
	if pr == nil || pr.Extracted != ActionOff {
		t.Fatalf("expected off, got %+v", pr)
	}
}

func TestActionGuessIsToggle(t *testing.T) {
	h := &ActionHandler{}
	h.Setup(newReq("lights", "en"))
	if got := h.Guess("lights"); got != ActionToggle {
		t.Fatalf("expected toggle guess, got %q", got)
	}
}

func TestArtistExtractionCleansService(t *testing.T) {
	req := domain.NewRequest("Play music by Queen on Spotify", "en", "s1")
	req.TextNorm = "play music by queen on spotify"

	artist := Resolve(req, domain.ParamMusicArtist, req.TextNorm)
	if artist == nil || artist.Extracted != "Queen" {
		t.Fatalf("expected Queen with original casing, got %+v", artist)
	}

	service := req.StoredParameterResult(domain.ParamMusicService)
	if service == nil || service.Extracted != MusicServiceSpotify {
		t.Fatalf("service must be claimed before the artist, got %+v", service)
	}
}

func TestArtistExtractionGerman(t *testing.T) {
	req := domain.NewRequest("Spiele Musik von Rammstein", "de", "s1")
	req.TextNorm = "spiele musik von rammstein"

	artist := Resolve(req, domain.ParamMusicArtist, req.TextNorm)
	if artist == nil || artist.Extracted != "Rammstein" {
		t.Fatalf("expected Rammstein, got %+v", artist)
	}
}

func TestBuildAndValidate(t *testing.T) {
	h, ok := HandlerFor(domain.ParamSmartDevice)
	if !ok {
		t.Fatalf("smart_device handler not registered")
	}
	h.Setup(newReq("x", "en"))

	built, err := h.Build(DeviceLight + ";2")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !h.Validate(built) {
		t.Fatalf("built value must validate: %s", built)
	}

	p := domain.Parameter{Name: domain.ParamSmartDevice, Value: built}
	if p.ValueString() != DeviceLight {
		t.Fatalf("expected canonical value light, got %q", p.ValueString())
	}
	if p.DataInt(domain.DataItemIndex, 0) != 2 {
		t.Fatalf("expected index 2, got %d", p.DataInt(domain.DataItemIndex, 0))
	}

	if h.Validate("not json") {
		t.Fatalf("garbage must not validate")
	}
}

func TestCleanInputRemovesClaimedSpan(t *testing.T) {
	req := newReq("turn on the light in the kitchen", "en")
	cleaned := CleanInput(req, domain.ParamSmartDevice, req.TextNorm)
	if strings.Contains(cleaned, "light") {
		t.Fatalf("claimed span must be removed, got %q", cleaned)
	}
	if !strings.Contains(cleaned, "kitchen") {
		t.Fatalf("unclaimed text must survive, got %q", cleaned)
	}
}

func TestRegisteredNames(t *testing.T) {
	names := RegisteredNames()
	for _, want := range []string{
		domain.ParamSmartDevice, domain.ParamRoom, domain.ParamAction,
		domain.ParamDeviceValue, domain.ParamMusicArtist, domain.ParamMusicService,
	} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("handler %q not registered (have %v)", want, names)
		}
	}
}
