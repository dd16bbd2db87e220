package domain

// Result statuses. "okay" is the soft failure: the pipeline finished but
// could not satisfy the request (no permission, no data, user declined);
// it always carries a planned answer. "fail" is reserved for broken
// external dependencies.
type ResultStatus string

const (
	StatusSuccess    ResultStatus = "success"
	StatusOkay       ResultStatus = "okay"
	StatusFail       ResultStatus = "fail"
	StatusIncomplete ResultStatus = "incomplete"
)

// Response types consumed by clients.
const (
	ResponseInfo     = "info"
	ResponseQuestion = "question"
)

// Client action types.
const (
	ActionOpenURL     = "open_url"
	ActionPlayMusic   = "play_music"
	ActionDeviceState = "device_state"
	ActionTeachUI     = "button_teach_ui"
)

// ServiceResult is what a service execution produces: a status, an answer
// (resolved from an answer key), optional cards/actions for the client and,
// when incomplete, the parameter that still needs asking.
type ServiceResult struct {
	Status      ResultStatus
	Answer      string
	AnswerClean string
	HTMLInfo    string
	Cards       []map[string]any
	Actions     []map[string]any
	ResultInfo  map[string]any
	CustomInfo  map[string]any

	ResponseType    string
	IncompleteParam *Parameter
	Language        string
	ContextTag      string
	Mood            int
}

func NewServiceResult(language string) *ServiceResult {
	return &ServiceResult{
		Status:       StatusOkay,
		ResponseType: ResponseInfo,
		ResultInfo:   make(map[string]any),
		CustomInfo:   make(map[string]any),
		Language:     language,
		Mood:         -1,
	}
}

func (sr *ServiceResult) IsSuccess() bool {
	return sr.Status == StatusSuccess
}

func (sr *ServiceResult) IsOkay() bool {
	return sr.Status == StatusOkay
}

func (sr *ServiceResult) IsIncomplete() bool {
	return sr.Status == StatusIncomplete
}

func (sr *ServiceResult) AddAction(actionType string, info map[string]any) {
	action := map[string]any{"type": actionType}
	for k, v := range info {
		action[k] = v
	}
	sr.Actions = append(sr.Actions, action)
}

func (sr *ServiceResult) AddCard(card map[string]any) {
	sr.Cards = append(sr.Cards, card)
}
