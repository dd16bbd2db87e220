package interview

import (
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// Builder is the result surface handed to a service while it runs. It wraps
// the interpretation and accumulates the service result, including the
// mid-service dialog moves: asking for a missing parameter and running a
// confirmation sub-dialog.
type Builder struct {
	Req    *domain.Request
	Interp *domain.Interpretation

	answers answers.Store
	result  *domain.ServiceResult
	logger  *zap.Logger
}

func NewBuilder(interp *domain.Interpretation, store answers.Store, logger *zap.Logger) *Builder {
	result := domain.NewServiceResult(interp.Language)
	result.ContextTag = interp.ContextTag
	return &Builder{
		Req:     interp.Request,
		Interp:  interp,
		answers: store,
		result:  result,
		logger:  logger,
	}
}

// Required returns a required parameter with its built value.
func (b *Builder) Required(name string) domain.Parameter {
	return b.Interp.RequiredParameter(name)
}

// Optional returns an optional parameter, falling back to a default.
func (b *Builder) Optional(name, defaultValue string) domain.Parameter {
	return b.Interp.OptionalParameter(name, defaultValue)
}

// SetIncompleteAndAsk turns the result into a question for a parameter the
// service discovered it still needs (beyond the declared required set).
func (b *Builder) SetIncompleteAndAsk(name, questionKey string, args ...string) {
	b.result.Status = domain.StatusIncomplete
	b.result.ResponseType = domain.ResponseQuestion
	b.result.IncompleteParam = &domain.Parameter{Name: name, Required: true, Question: questionKey}
	b.result.Answer = b.answers.Get(b.Interp.Language, questionKey, args...)
	b.logger.Debug("service asks for parameter",
		zap.String("parameter", name),
		zap.String("question", questionKey))
}

// ConfirmStatusOf reads the state of a named confirmation sub-dialog.
func (b *Builder) ConfirmStatusOf(name string) int {
	return b.Req.ConfirmStatus(name)
}

// AskConfirm turns the result into a yes/no question addressed by a confirm
// tag instead of a parameter name.
func (b *Builder) AskConfirm(name, questionKey string, args ...string) {
	b.result.Status = domain.StatusIncomplete
	b.result.ResponseType = domain.ResponseQuestion
	b.result.IncompleteParam = &domain.Parameter{
		Name:     domain.ConfirmTag(name),
		Question: questionKey,
	}
	b.result.Answer = b.answers.Get(b.Interp.Language, questionKey, args...)
}

func (b *Builder) SetStatusSuccess() { b.result.Status = domain.StatusSuccess }
func (b *Builder) SetStatusOkay()    { b.result.Status = domain.StatusOkay }
func (b *Builder) SetStatusFail()    { b.result.Status = domain.StatusFail }

// SetCustomAnswer resolves an answer key with wildcard args.
func (b *Builder) SetCustomAnswer(key string, args ...string) {
	b.result.Answer = b.answers.Get(b.Interp.Language, key, args...)
}

// SetHTMLInfo attaches display markup; the spoken answer stays clean.
func (b *Builder) SetHTMLInfo(html string) {
	b.result.HTMLInfo = html
}

func (b *Builder) ResultInfoPut(key string, value any) {
	b.result.ResultInfo[key] = value
}

func (b *Builder) AddAction(actionType string, info map[string]any) {
	b.result.AddAction(actionType, info)
}

func (b *Builder) AddCard(card map[string]any) {
	b.result.AddCard(card)
}

// Build finalizes the result. The clean answer is derived here so every
// service gets it for free.
func (b *Builder) Build() *domain.ServiceResult {
	b.result.AnswerClean = answers.Clean(b.result.Answer)
	return b.result
}
