package adapter

import (
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/util"
)

// ClientMessage is one incoming turn on the wire.
type ClientMessage struct {
	Text        string   `json:"text"`
	Language    string   `json:"lang"`
	Context     string   `json:"context,omitempty"`
	Environment string   `json:"env,omitempty"`
	Mood        *int     `json:"mood,omitempty"`
	SessionID   string   `json:"session_id"`
	DeviceID    string   `json:"device_id,omitempty"`
	InputType   string   `json:"input_type,omitempty"`
	InputMiss   string   `json:"input_miss,omitempty"`
	DialogStage int      `json:"dialog_stage,omitempty"`
	LastCommand string   `json:"last_cmd,omitempty"`
	UserID      string   `json:"user_id,omitempty"`
	UserRoles   []string `json:"user_roles,omitempty"`
}

// ToRequest converts a wire message into the pipeline request. Unknown input
// types degrade to a plain question; language falls back to the default.
func (m *ClientMessage) ToRequest(defaultLanguage string, supported []string) *domain.Request {
	language := util.Normalize(m.Language)
	if !util.Contains(supported, language) {
		language = defaultLanguage
	}

	req := domain.NewRequest(m.Text, language, m.SessionID)
	if m.Context != "" {
		req.Context = m.Context
	}
	req.Environment = m.Environment
	if m.Mood != nil {
		req.Mood = *m.Mood
	}
	req.DeviceID = m.DeviceID

	switch m.InputType {
	case domain.InputDirectCmd, domain.InputResponse:
		req.InputType = m.InputType
	default:
		req.InputType = domain.InputQuestion
	}
	req.InputMiss = m.InputMiss
	req.DialogStage = m.DialogStage
	req.LastCommand = m.LastCommand

	if m.UserID != "" {
		req.User = &domain.User{ID: m.UserID, Roles: m.UserRoles}
	}
	return req
}
