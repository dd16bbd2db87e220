package interview

import (
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/constants"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/param"
)

// Collector fills a service's declared parameters before the service runs:
// extraction from the current input, follow-up answers applied to the
// parameter they were asked for, and questions for whatever is still
// missing. The dialog itself is stateless; everything it needs comes back
// in the next request via client echo (input type, input miss, dialog
// stage, command summary).
type Collector struct {
	answers answers.Store
	logger  *zap.Logger
}

func NewCollector(store answers.Store, logger *zap.Logger) *Collector {
	return &Collector{answers: store, logger: logger}
}

// ApplyResponse consumes a follow-up answer turn: the raw text answers the
// parameter (or confirmation) named by the request's input-miss tag. Returns
// an abort result when the user backs out, otherwise nil.
func (c *Collector) ApplyResponse(interp *domain.Interpretation) *domain.ServiceResult {
	req := interp.Request
	if req.InputType != domain.InputResponse || req.InputMiss == "" {
		return nil
	}

	if IsAbortPhrase(req.TextNorm, req.Language) {
		return c.abortResult(interp)
	}
	if req.DialogStage > constants.Dialog.MaxQuestionRepeats {
		c.logger.Info("dialog stage ceiling reached, aborting",
			zap.Int("stage", req.DialogStage),
			zap.String("input_miss", req.InputMiss))
		return c.abortResult(interp)
	}

	if name, ok := domain.IsConfirmTag(req.InputMiss); ok {
		affirmed, recognized := ParseYesNo(req.TextNorm, req.Language)
		if !recognized {
			// leave unasked; the service re-asks until the stage ceiling
			return nil
		}
		status := domain.ConfirmDeclined
		if affirmed {
			status = domain.ConfirmAffirmed
		}
		req.SetConfirmStatus(name, status)
		return nil
	}

	c.applyAnswerTo(interp, req.InputMiss)
	return nil
}

// applyAnswerTo re-extracts a single parameter from the follow-up text. The
// cached extraction from the question turn is dropped first; the answer is
// this turn's source of truth for that one parameter.
func (c *Collector) applyAnswerTo(interp *domain.Interpretation, name string) {
	req := interp.Request
	handler, ok := param.HandlerFor(name)
	if !ok {
		return
	}
	req.ClearParameterResult(name)
	handler.Setup(req)

	input := handler.ResponseTweak(req.TextNorm)
	extracted := handler.Extract(input)
	if extracted == "" {
		// free-text answer; take it whole
		extracted = input
	}
	built, err := handler.Build(extracted)
	if err != nil {
		c.logger.Warn("building follow-up answer failed",
			zap.String("parameter", name),
			zap.Error(err))
		return
	}
	interp.SetParam(name, built)
}

// CollectRequired walks the declared parameters in order. Required ones are
// extracted, then guessed, then asked; optional ones get their default. A
// non-nil return is a question (or abort) that ends this turn.
func (c *Collector) CollectRequired(interp *domain.Interpretation, declared []domain.Parameter) *domain.ServiceResult {
	req := interp.Request
	input := req.TextNorm
	if input == "" {
		input = req.Text
	}

	for _, p := range declared {
		if interp.Param(p.Name) != "" {
			continue
		}

		handler, ok := param.HandlerFor(p.Name)
		if !ok {
			c.logger.Warn("no handler for declared parameter", zap.String("parameter", p.Name))
			continue
		}
		handler.Setup(req)

		pr := param.Resolve(req, p.Name, input)
		extracted := ""
		if pr != nil {
			extracted = pr.Extracted
		}
		if extracted == "" && !p.Required {
			extracted = p.Default
		}
		if extracted == "" && p.Required {
			extracted = handler.Guess(input)
		}
		if extracted == "" {
			if !p.Required {
				continue
			}
			return c.askFor(interp, p)
		}

		built, err := handler.Build(extracted)
		if err != nil {
			c.logger.Warn("parameter build failed",
				zap.String("parameter", p.Name),
				zap.Error(err))
			return c.notPossibleResult(interp)
		}
		if !handler.Validate(built) {
			return c.notPossibleResult(interp)
		}
		interp.SetParam(p.Name, built)
	}
	return nil
}

func (c *Collector) askFor(interp *domain.Interpretation, p domain.Parameter) *domain.ServiceResult {
	req := interp.Request
	if req.InputType == domain.InputResponse && req.DialogStage >= constants.Dialog.MaxQuestionRepeats {
		return c.abortResult(interp)
	}

	result := domain.NewServiceResult(interp.Language)
	result.Status = domain.StatusIncomplete
	result.ResponseType = domain.ResponseQuestion
	result.IncompleteParam = &p
	result.Answer = c.answers.Get(interp.Language, p.Question)
	result.AnswerClean = answers.Clean(result.Answer)
	result.ContextTag = interp.ContextTag
	c.logger.Debug("asking for required parameter",
		zap.String("parameter", p.Name),
		zap.String("command", string(interp.Command)))
	return result
}

func (c *Collector) abortResult(interp *domain.Interpretation) *domain.ServiceResult {
	result := domain.NewServiceResult(interp.Language)
	result.Status = domain.StatusOkay
	result.Answer = c.answers.Get(interp.Language, answers.KeyAbort)
	result.AnswerClean = answers.Clean(result.Answer)
	result.ContextTag = string(domain.CommandAbort)
	return result
}

func (c *Collector) notPossibleResult(interp *domain.Interpretation) *domain.ServiceResult {
	result := domain.NewServiceResult(interp.Language)
	result.Status = domain.StatusOkay
	result.Answer = c.answers.Get(interp.Language, answers.KeyNotPossible)
	result.AnswerClean = answers.Clean(result.Answer)
	result.ContextTag = interp.ContextTag
	return result
}
