package adapter

import (
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Response is the wire shape of one answered turn. The echo fields
// (cmd_summary, input_miss, dialog_stage) carry the whole dialog state; a
// client that sends them back verbatim continues the conversation on any
// server instance.
type Response struct {
	Result      string `json:"result"`
	Answer      string `json:"answer"`
	AnswerClean string `json:"answer_clean"`

	HTMLInfo   string           `json:"htmlInfo,omitempty"`
	HasInfo    bool             `json:"hasInfo"`
	CardInfo   []map[string]any `json:"cardInfo,omitempty"`
	HasCard    bool             `json:"hasCard"`
	ActionInfo []map[string]any `json:"actionInfo,omitempty"`
	HasAction  bool             `json:"hasAction"`

	ResponseType string `json:"response_type"`
	Context      string `json:"context,omitempty"`
	Mood         int    `json:"mood,omitempty"`
	Language     string `json:"lang"`

	CmdSummary  string `json:"cmd_summary,omitempty"`
	InputMiss   string `json:"input_miss,omitempty"`
	DialogStage int    `json:"dialog_stage,omitempty"`

	RequestID string `json:"request_id,omitempty"`
}

// FromResult shapes a service result for the client. Incomplete results
// carry the interpretation summary in their custom info; it becomes the
// cmd_summary echo.
func FromResult(req *domain.Request, result *domain.ServiceResult) *Response {
	resp := &Response{
		Result:       string(result.Status),
		Answer:       result.Answer,
		AnswerClean:  result.AnswerClean,
		HTMLInfo:     result.HTMLInfo,
		HasInfo:      result.HTMLInfo != "",
		CardInfo:     result.Cards,
		HasCard:      len(result.Cards) > 0,
		ActionInfo:   result.Actions,
		HasAction:    len(result.Actions) > 0,
		ResponseType: result.ResponseType,
		Context:      result.ContextTag,
		Mood:         result.Mood,
		Language:     result.Language,
		RequestID:    req.ID,
	}

	if result.IsIncomplete() && result.IncompleteParam != nil {
		if summary, ok := result.CustomInfo["cmd_summary"].(string); ok {
			resp.CmdSummary = summary
		}
		resp.InputMiss = result.IncompleteParam.Name
		resp.DialogStage = req.DialogStage + 1
	}
	return resp
}
