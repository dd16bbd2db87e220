package domain

import "encoding/json"

// Parameter names understood by the built-in handlers and services.
const (
	ParamSmartDevice = "smart_device"
	ParamRoom        = "room"
	ParamAction      = "action"
	ParamDeviceValue = "smart_device_value"
	ParamMusicArtist = "music_artist"
	ParamMusicService = "music_service"
	ParamReply       = "reply"
	ParamURL         = "url"
)

// Keys used inside built parameter values.
const (
	DataValue      = "value"
	DataValueLocal = "value_local"
	DataItemIndex  = "index"
	DataValueType  = "type"
	DataDeviceTag  = "tag"
)

// Parameter is one declared input of a service. Value holds the serialized
// built form once the handler ran; Data gives decoded access to it.
type Parameter struct {
	Name     string
	Required bool
	Default  string
	Question string
	Value    string
}

func NewRequiredParameter(name, question string) Parameter {
	return Parameter{Name: name, Required: true, Question: question}
}

func NewOptionalParameter(name, defaultValue string) Parameter {
	return Parameter{Name: name, Default: defaultValue}
}

func (p Parameter) IsEmpty() bool {
	return p.Value == ""
}

// Data decodes the built value. Returns an empty map for raw or empty values.
func (p Parameter) Data() map[string]any {
	if p.Value == "" {
		return map[string]any{}
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(p.Value), &data); err != nil {
		return map[string]any{}
	}
	return data
}

// ValueString returns the canonical "value" field of the built form, or the
// raw value when the parameter was never built.
func (p Parameter) ValueString() string {
	data := p.Data()
	if v, ok := data[DataValue].(string); ok {
		return v
	}
	return p.Value
}

// DataString returns a string field of the built value with a fallback.
func (p Parameter) DataString(key, fallback string) string {
	if v, ok := p.Data()[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// DataInt returns an integer field of the built value with a fallback.
// JSON numbers decode as float64.
func (p Parameter) DataInt(key string, fallback int) int {
	switch v := p.Data()[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

// ParameterResult is a memoized extraction outcome: the value a handler
// extracted plus the exact input substring it claimed.
type ParameterResult struct {
	Name      string
	Extracted string
	Found     string
}
