package services

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/smarthome"
)

type fakeHub struct {
	devices   []smarthome.Device
	setCalls  []string
	setErr    error
	filterErr error
}

func (h *fakeHub) FilterDevices(ctx context.Context, filter smarthome.Filter) ([]smarthome.Device, error) {
	if h.filterErr != nil {
		return nil, h.filterErr
	}
	var matched []smarthome.Device
	for _, d := range h.devices {
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Room != "" && d.Room != filter.Room {
			continue
		}
		if filter.RoomIndex > 0 && d.RoomIndex != filter.RoomIndex {
			continue
		}
		matched = append(matched, d)
	}
	return matched, nil
}

func (h *fakeHub) SetState(ctx context.Context, device smarthome.Device, state, stateType string) error {
	if h.setErr != nil {
		return h.setErr
	}
	h.setCalls = append(h.setCalls, device.ID+"="+state)
	return nil
}

func builderFor(t *testing.T, params map[string]string) *interview.Builder {
	t.Helper()
	req := domain.NewRequest("test", "en", "s1")
	interp := domain.NewInterpretation(req, domain.CommandSmartDevice, params, 1.0)
	return interview.NewBuilder(interp, answers.NewStore(zap.NewNop()), zap.NewNop())
}

func lightParams() map[string]string {
	return map[string]string{
		domain.ParamSmartDevice: `{"value":"light","value_local":"light"}`,
		domain.ParamAction:      `{"value":"on"}`,
	}
}

func TestSmartDeviceTurnOnSingleMatch(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "light", Room: "kitchen", State: "off"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	result := svc.Run(context.Background(), builderFor(t, lightParams()))
	if !result.IsSuccess() {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(hub.setCalls) != 1 || hub.setCalls[0] != "d1=on" {
		t.Fatalf("expected d1=on, got %v", hub.setCalls)
	}
	if len(result.Actions) != 1 {
		t.Fatalf("expected one device_state action, got %v", result.Actions)
	}
}

func TestSmartDeviceMultipleNoRoomAsksRoom(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "light", Room: "kitchen", State: "off"},
		{ID: "d2", Type: "light", Room: "bedroom", State: "off"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	result := svc.Run(context.Background(), builderFor(t, lightParams()))
	if !result.IsIncomplete() {
		t.Fatalf("expected room question, got %+v", result)
	}
	if result.IncompleteParam == nil || result.IncompleteParam.Name != domain.ParamRoom {
		t.Fatalf("expected room to be asked, got %+v", result.IncompleteParam)
	}
	if len(hub.setCalls) != 0 {
		t.Fatalf("no state change before disambiguation")
	}
}

func TestSmartDeviceMultipleSameRoomAsksConfirm(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "light", Room: "kitchen", State: "off"},
		{ID: "d2", Type: "light", Room: "kitchen", State: "off"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	params := lightParams()
	params[domain.ParamRoom] = `{"value":"kitchen","value_local":"kitchen"}`
	result := svc.Run(context.Background(), builderFor(t, params))
	if !result.IsIncomplete() {
		t.Fatalf("expected confirm question, got %+v", result)
	}
	name, ok := domain.IsConfirmTag(result.IncompleteParam.Name)
	if !ok || name != "use_first_device" {
		t.Fatalf("expected use_first_device confirm tag, got %q", result.IncompleteParam.Name)
	}
}

func TestSmartDeviceConfirmAffirmedUsesFirst(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "light", Room: "kitchen", State: "off"},
		{ID: "d2", Type: "light", Room: "kitchen", State: "off"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	params := lightParams()
	params[domain.ParamRoom] = `{"value":"kitchen","value_local":"kitchen"}`
	b := builderFor(t, params)
	b.Req.SetConfirmStatus("use_first_device", domain.ConfirmAffirmed)

	result := svc.Run(context.Background(), b)
	if !result.IsSuccess() {
		t.Fatalf("expected success after affirmation, got %+v", result)
	}
	if len(hub.setCalls) != 1 || hub.setCalls[0] != "d1=on" {
		t.Fatalf("expected the first device, got %v", hub.setCalls)
	}
}

func TestSmartDeviceConfirmDeclinedEndsPolitely(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "light", Room: "kitchen", State: "off"},
		{ID: "d2", Type: "light", Room: "kitchen", State: "off"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	params := lightParams()
	params[domain.ParamRoom] = `{"value":"kitchen","value_local":"kitchen"}`
	b := builderFor(t, params)
	b.Req.SetConfirmStatus("use_first_device", domain.ConfirmDeclined)

	result := svc.Run(context.Background(), b)
	if !result.IsOkay() {
		t.Fatalf("declined confirmation must end softly, got %+v", result)
	}
	if len(hub.setCalls) != 0 {
		t.Fatalf("declined confirmation must not change state")
	}
}

func TestSmartDeviceNoMatchIsSoftFailure(t *testing.T) {
	hub := &fakeHub{}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	result := svc.Run(context.Background(), builderFor(t, lightParams()))
	if !result.IsOkay() {
		t.Fatalf("no device is a planned outcome, got %+v", result)
	}
	if result.Answer == "" {
		t.Fatalf("soft failure must carry an answer")
	}
}

func TestSmartDeviceSetWithoutValueAsks(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "heater", Room: "bedroom", State: "18"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	params := map[string]string{
		domain.ParamSmartDevice: `{"value":"heater","value_local":"heater"}`,
		domain.ParamAction:      `{"value":"set"}`,
	}
	result := svc.Run(context.Background(), builderFor(t, params))
	if !result.IsIncomplete() || result.IncompleteParam.Name != domain.ParamDeviceValue {
		t.Fatalf("set without value must ask for the value, got %+v", result)
	}
}

func TestSmartDeviceHubFailureIsHardFailure(t *testing.T) {
	hub := &fakeHub{
		devices: []smarthome.Device{{ID: "d1", Type: "light", Room: "kitchen", State: "off"}},
		setErr:  fmt.Errorf("broker down"),
	}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	result := svc.Run(context.Background(), builderFor(t, lightParams()))
	if result.Status != domain.StatusFail {
		t.Fatalf("a broken hub is a hard failure, got %+v", result)
	}
}

func TestSmartDeviceGuestIsRefused(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "light", Room: "kitchen", State: "off"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	b := builderFor(t, lightParams())
	b.Req.User = &domain.User{ID: "guest", Roles: []string{domain.RoleSmartHomeGuest}}

	result := svc.Run(context.Background(), b)
	if !result.IsOkay() {
		t.Fatalf("guest refusal is a soft outcome, got %+v", result)
	}
	if len(hub.setCalls) != 0 {
		t.Fatalf("guest must not change device state")
	}
}

func TestSmartDeviceShowState(t *testing.T) {
	hub := &fakeHub{devices: []smarthome.Device{
		{ID: "d1", Type: "heater", Room: "bedroom", State: "21"},
	}}
	svc := NewSmartDeviceService(hub, zap.NewNop())

	params := map[string]string{
		domain.ParamSmartDevice: `{"value":"heater","value_local":"heater"}`,
		domain.ParamAction:      `{"value":"show"}`,
	}
	result := svc.Run(context.Background(), builderFor(t, params))
	if !result.IsSuccess() {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(hub.setCalls) != 0 {
		t.Fatalf("show must not change state")
	}
	if result.ResultInfo["state"] != "21" {
		t.Fatalf("expected state in result info, got %v", result.ResultInfo)
	}
}
