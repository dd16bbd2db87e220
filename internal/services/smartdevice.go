package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/param"
	"github.com/voxadev/voxa-assist-go/internal/smarthome"
)

const confirmUseFirstDevice = "use_first_device"

// SmartDeviceService controls devices through the smart-home hub. It owns
// the disambiguation dialog: several matching devices without a room ask for
// the room, several within one room ask whether the first one is fine.
type SmartDeviceService struct {
	hub    smarthome.Hub
	logger *zap.Logger
}

func NewSmartDeviceService(hub smarthome.Hub, logger *zap.Logger) *SmartDeviceService {
	return &SmartDeviceService{hub: hub, logger: logger}
}

func (s *SmartDeviceService) Info() Descriptor {
	return Descriptor{
		ID:              "voxa.smartdevice",
		IntendedCommand: domain.CommandSmartDevice,
		RequiredParams: []domain.Parameter{
			domain.NewRequiredParameter(domain.ParamSmartDevice, answers.KeyAskDevice),
			domain.NewRequiredParameter(domain.ParamAction, ""),
		},
		OptionalParams: []domain.Parameter{
			domain.NewOptionalParameter(domain.ParamRoom, ""),
			domain.NewOptionalParameter(domain.ParamDeviceValue, ""),
		},
		Answers: AnswerKeys{
			Success: answers.KeyDeviceSet,
			Okay:    answers.KeyDeviceNotFound,
			Fail:    answers.KeyError,
		},
		Public: true,
	}
}

func (s *SmartDeviceService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	if b.Req.User.HasRole(domain.RoleSmartHomeGuest) {
		b.SetStatusOkay()
		b.SetCustomAnswer(answers.KeyDeviceGuest)
		return b.Build()
	}

	device := b.Required(domain.ParamSmartDevice)
	action := b.Required(domain.ParamAction)
	room := b.Optional(domain.ParamRoom, "")
	value := b.Optional(domain.ParamDeviceValue, "")

	deviceType := device.ValueString()
	deviceLocal := device.DataString(domain.DataValueLocal, deviceType)
	actionValue := action.ValueString()

	if actionValue == param.ActionSet && value.IsEmpty() {
		b.SetIncompleteAndAsk(domain.ParamDeviceValue, answers.KeyAskDeviceValue, deviceLocal)
		return b.Build()
	}

	filter := smarthome.Filter{
		Type:      deviceType,
		Room:      room.ValueString(),
		RoomIndex: room.DataInt(domain.DataItemIndex, 0),
		Tag:       device.DataString(domain.DataDeviceTag, ""),
	}
	if idx := device.DataInt(domain.DataItemIndex, 0); idx > 0 && filter.RoomIndex == 0 {
		filter.RoomIndex = idx
	}

	matched, err := s.hub.FilterDevices(ctx, filter)
	if err != nil {
		s.logger.Error("device lookup failed", zap.Error(err))
		b.SetStatusFail()
		b.SetCustomAnswer(answers.KeyHubUnreachable)
		return b.Build()
	}

	roomLocal := room.DataString(domain.DataValueLocal, "")
	switch {
	case len(matched) == 0:
		b.SetStatusOkay()
		if roomLocal != "" {
			b.SetCustomAnswer(answers.KeyNoDeviceInRoom, deviceLocal, roomLocal)
		} else {
			b.SetCustomAnswer(answers.KeyDeviceNotFound, deviceLocal)
		}
		return b.Build()

	case len(matched) > 1 && room.IsEmpty():
		b.SetIncompleteAndAsk(domain.ParamRoom, answers.KeyAskRoomOfMany, deviceLocal)
		return b.Build()

	case len(matched) > 1:
		switch b.ConfirmStatusOf(confirmUseFirstDevice) {
		case domain.ConfirmUnasked:
			b.AskConfirm(confirmUseFirstDevice, answers.KeyAskFirstOfMany)
			return b.Build()
		case domain.ConfirmDeclined:
			b.SetStatusOkay()
			b.SetCustomAnswer(answers.KeyOk)
			return b.Build()
		}
	}
	target := matched[0]
	if roomLocal == "" {
		roomLocal = param.RoomLocal(target.Room, b.Interp.Language)
	}

	if actionValue == param.ActionShow {
		b.SetStatusSuccess()
		b.SetCustomAnswer(answers.KeyDeviceShow, deviceLocal, roomLocal, target.State)
		b.ResultInfoPut("device", target.ID)
		b.ResultInfoPut("state", target.State)
		return b.Build()
	}

	newState, stateType := s.targetState(actionValue, value, target)
	if err := s.hub.SetState(ctx, target, newState, stateType); err != nil {
		s.logger.Error("device state change failed",
			zap.String("device", target.ID),
			zap.Error(err))
		b.SetStatusFail()
		b.SetCustomAnswer(answers.KeyDeviceSetFailed, deviceLocal)
		return b.Build()
	}

	b.SetStatusSuccess()
	switch actionValue {
	case param.ActionOn, param.ActionIncrease:
		b.SetCustomAnswer(answers.KeyDeviceOn, deviceLocal, roomLocal)
	case param.ActionOff, param.ActionDecrease:
		b.SetCustomAnswer(answers.KeyDeviceOff, deviceLocal, roomLocal)
	case param.ActionSet:
		b.SetCustomAnswer(answers.KeyDeviceSet, deviceLocal, roomLocal, newState)
	default:
		b.SetCustomAnswer(answers.KeyDeviceToggled, deviceLocal, roomLocal)
	}
	b.ResultInfoPut("device", target.ID)
	b.ResultInfoPut("state", newState)
	b.AddAction(domain.ActionDeviceState, map[string]any{
		"device": target.ID,
		"room":   target.Room,
		"state":  newState,
	})
	return b.Build()
}

// targetState maps an action to the state the hub should apply.
func (s *SmartDeviceService) targetState(action string, value domain.Parameter, device smarthome.Device) (string, string) {
	switch action {
	case param.ActionOn:
		return "on", ""
	case param.ActionOff:
		return "off", ""
	case param.ActionSet:
		return value.ValueString(), value.DataString(domain.DataValueType, param.ValueTypePlain)
	case param.ActionToggle:
		if device.State == "on" {
			return "off", ""
		}
		return "on", ""
	case param.ActionIncrease, param.ActionDecrease:
		return steppedState(action, device.State), device.StateType
	default:
		return "on", ""
	}
}

// steppedState nudges a numeric state by 10, clamped to 0..100; non-numeric
// states fall back to plain on/off.
func steppedState(action, current string) string {
	n, err := strconv.Atoi(current)
	if err != nil {
		if action == param.ActionDecrease {
			return "off"
		}
		return "on"
	}
	if action == param.ActionDecrease {
		n -= 10
	} else {
		n += 10
	}
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return strconv.Itoa(n)
}
