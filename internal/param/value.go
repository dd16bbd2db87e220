package param

import (
	"regexp"
	"strings"

	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Value types of a smart-device target state.
const (
	ValueTypePlain       = "number_plain"
	ValueTypePercent     = "number_percent"
	ValueTypeTemperature = "number_temperature"
)

// The word boundary sits inside the unit alternatives: a trailing \b after
// the whole group would never match behind "%".
var deviceValuePattern = regexp.MustCompile(`(\d+([.,]\d+)?)\b( )?(%|percent\b|prozent\b|degrees?( celsius| fahrenheit)?\b|grad\b)?`)

// DeviceValueHandler extracts the numeric target state ("21 degrees",
// "50 %"). Room extraction runs first so an indexed room ("bedroom 2")
// never loses its number to the value handler.
type DeviceValueHandler struct {
	base
}

func init() {
	Register(domain.ParamDeviceValue, func() Handler { return &DeviceValueHandler{} })
}

func (h *DeviceValueHandler) Extract(input string) string {
	if pr := h.req.StoredParameterResult(domain.ParamDeviceValue); pr != nil {
		h.found = pr.Found
		return pr.Extracted
	}

	optimized := CleanInput(h.req, domain.ParamRoom, input)
	optimized = CleanInput(h.req, domain.ParamSmartDevice, optimized)

	extracted := ""
	h.found = ""
	if m := deviceValuePattern.FindStringSubmatch(optimized); m != nil {
		h.found = strings.TrimSpace(m[0])
		number := strings.ReplaceAll(m[1], ",", ".")
		valueType := ValueTypePlain
		unit := strings.TrimSpace(m[4])
		switch {
		case unit == "%" || unit == "percent" || unit == "prozent":
			valueType = ValueTypePercent
		case strings.HasPrefix(unit, "degree") || unit == "grad":
			valueType = ValueTypeTemperature
		}
		extracted = number + ";" + valueType
	}

	h.req.StoreParameterResult(&domain.ParameterResult{
		Name:      domain.ParamDeviceValue,
		Extracted: extracted,
		Found:     h.found,
	})
	return extracted
}

func (h *DeviceValueHandler) Validate(value string) bool {
	return validateBuilt(value)
}

func (h *DeviceValueHandler) Build(value string) (string, error) {
	number := value
	valueType := ValueTypePlain
	if n, t, ok := strings.Cut(value, ";"); ok {
		number = n
		if t != "" {
			valueType = t
		}
	}
	return buildValue(map[string]any{
		domain.DataValue:     number,
		domain.DataValueType: valueType,
	})
}
