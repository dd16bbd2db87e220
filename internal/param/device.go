package param

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Canonical smart-device types.
const (
	DeviceLight         = "light"
	DeviceHeater        = "heater"
	DeviceTV            = "tv"
	DeviceFridge        = "fridge"
	DeviceOven          = "oven"
	DeviceCoffeeMaker   = "coffee_maker"
	DeviceRollerShutter = "roller_shutter"
	DevicePowerOutlet   = "power_outlet"
	DeviceSensor        = "sensor"
)

var deviceSynonymsEN = []struct {
	expr      string
	canonical string
}{
	{`\b(lights?|lamps?)\b`, DeviceLight},
	{`\b(heaters?|heating|thermostats?)\b`, DeviceHeater},
	{`\b(tv|television)\b`, DeviceTV},
	{`\b(fridge|refrigerator)\b`, DeviceFridge},
	{`\boven\b`, DeviceOven},
	{`\bcoffee maker\b`, DeviceCoffeeMaker},
	{`\b(roller shutters?|blinds)\b`, DeviceRollerShutter},
	{`\b(outlets?|sockets?)\b`, DevicePowerOutlet},
	{`\bsensors?\b`, DeviceSensor},
}

var deviceSynonymsDE = []struct {
	expr      string
	canonical string
}{
	{`\b(licht(er)?|lampe(n)?|leuchte(n)?)\b`, DeviceLight},
	{`\b(heizung(en)?|thermostat(e)?)\b`, DeviceHeater},
	{`\b(fernseher|tv)\b`, DeviceTV},
	{`\bkuehlschrank\b`, DeviceFridge},
	{`\bofen\b`, DeviceOven},
	{`\bkaffeemaschine\b`, DeviceCoffeeMaker},
	{`\b(roll(l)?aden|jalousie(n)?)\b`, DeviceRollerShutter},
	{`\bsteckdose(n)?\b`, DevicePowerOutlet},
	{`\bsensor(en)?\b`, DeviceSensor},
}

var deviceLocalDE = map[string]string{
	DeviceLight:         "Licht",
	DeviceHeater:        "Heizung",
	DeviceTV:            "Fernseher",
	DeviceFridge:        "Kühlschrank",
	DeviceOven:          "Ofen",
	DeviceCoffeeMaker:   "Kaffeemaschine",
	DeviceRollerShutter: "Rollladen",
	DevicePowerOutlet:   "Steckdose",
	DeviceSensor:        "Sensor",
}

var deviceLocalEN = map[string]string{
	DeviceLight:         "light",
	DeviceHeater:        "heater",
	DeviceTV:            "TV",
	DeviceFridge:        "fridge",
	DeviceOven:          "oven",
	DeviceCoffeeMaker:   "coffee maker",
	DeviceRollerShutter: "roller shutter",
	DevicePowerOutlet:   "power outlet",
	DeviceSensor:        "sensor",
}

// DeviceLocal returns the display name of a device type for a language.
func DeviceLocal(deviceType, language string) string {
	if language == "de" {
		if local, ok := deviceLocalDE[deviceType]; ok {
			return local
		}
	}
	if local, ok := deviceLocalEN[deviceType]; ok {
		return local
	}
	return deviceType
}

var trailingIndexPattern = regexp.MustCompile(`^(.*?)\s+(\d+)$`)

// SmartDeviceHandler extracts the device type (plus an optional trailing
// index like "light 2").
type SmartDeviceHandler struct {
	base
	deviceType string
	index      int
}

func init() {
	Register(domain.ParamSmartDevice, func() Handler { return &SmartDeviceHandler{} })
}

func (h *SmartDeviceHandler) Extract(input string) string {
	if pr := h.req.StoredParameterResult(domain.ParamSmartDevice); pr != nil {
		h.found = pr.Found
		return pr.Extracted
	}

	synonyms := deviceSynonymsEN
	if h.language == "de" {
		synonyms = deviceSynonymsDE
	}

	h.deviceType = ""
	h.index = 0
	h.found = ""
	for _, syn := range synonyms {
		match := findFirst(input, syn.expr+`( \d+)?`)
		if match == "" {
			continue
		}
		h.found = match
		h.deviceType = syn.canonical
		if m := trailingIndexPattern.FindStringSubmatch(match); m != nil {
			h.index, _ = strconv.Atoi(m[2])
		}
		break
	}

	extracted := h.deviceType
	if h.index > 0 {
		extracted = h.deviceType + ";" + strconv.Itoa(h.index)
	}
	h.req.StoreParameterResult(&domain.ParameterResult{
		Name:      domain.ParamSmartDevice,
		Extracted: extracted,
		Found:     h.found,
	})
	return extracted
}

func (h *SmartDeviceHandler) Validate(value string) bool {
	return validateBuilt(value)
}

func (h *SmartDeviceHandler) Build(value string) (string, error) {
	deviceType := value
	index := 0
	if t, i, ok := strings.Cut(value, ";"); ok {
		deviceType = t
		index, _ = strconv.Atoi(i)
	}
	fields := map[string]any{
		domain.DataValue:      deviceType,
		domain.DataValueLocal: DeviceLocal(deviceType, h.language),
	}
	if index > 0 {
		fields[domain.DataItemIndex] = index
	}
	return buildValue(fields)
}
