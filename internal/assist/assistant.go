package assist

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/constants"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/nlu"
	"github.com/voxadev/voxa-assist-go/internal/resolve"
	"github.com/voxadev/voxa-assist-go/internal/session"
	"github.com/voxadev/voxa-assist-go/internal/stats"
	"github.com/voxadev/voxa-assist-go/internal/storage"
	"github.com/voxadev/voxa-assist-go/internal/util"
)

// Assistant is the full answer pipeline for one turn: interpret the text,
// resolve services, run the interview, execute, remember. It holds no
// per-dialog state; every turn stands alone plus what the client echoes.
type Assistant struct {
	chain     *nlu.Chain
	resolver  *resolve.Resolver
	collector *interview.Collector
	answers   answers.Store
	sessions  *session.Store
	recorder  *stats.Recorder
	logger    *zap.Logger
}

func NewAssistant(
	chain *nlu.Chain,
	resolver *resolve.Resolver,
	collector *interview.Collector,
	store answers.Store,
	sessions *session.Store,
	recorder *stats.Recorder,
	logger *zap.Logger,
) *Assistant {
	return &Assistant{
		chain:     chain,
		resolver:  resolver,
		collector: collector,
		answers:   store,
		sessions:  sessions,
		recorder:  recorder,
		logger:    logger,
	}
}

// Answer processes one turn and always returns a result, never an error:
// whatever breaks becomes a spoken failure.
func (a *Assistant) Answer(ctx context.Context, req *domain.Request) *domain.ServiceResult {
	start := time.Now()
	req.Text = util.TruncateString(req.Text, constants.InputLimits.MaxTextLength)

	interp := a.chain.Interpret(req)
	a.logger.Info("turn interpreted",
		zap.String("request", req.ID),
		zap.String("command", interp.Command.String()),
		zap.Float64("certainty", interp.Certainty),
		zap.String("input_type", req.InputType),
	)

	var result *domain.ServiceResult
	if interp.Command == domain.CommandRepeat {
		result = a.repeatLast(ctx, req)
	} else {
		result = a.execute(ctx, interp)
	}

	if a.recorder != nil {
		a.recorder.RecordAsync(storage.InteractionRecord{
			SessionID: req.SessionID,
			Command:   interp.Command.String(),
			Status:    string(result.Status),
			Language:  req.Language,
			Certainty: interp.Certainty,
			Duration:  time.Since(start),
		})
	}

	if result.IsIncomplete() {
		// the client echoes this summary so the next turn can resume
		result.CustomInfo["cmd_summary"] = interp.Summary()
	}

	if a.sessions != nil && !result.IsIncomplete() && interp.Command != domain.CommandRepeat {
		a.sessions.SaveLast(ctx, req.SessionID, session.LastInteraction{
			Summary: interp.Summary(),
			Answer:  result.AnswerClean,
		})
	}
	return result
}

// execute resolves and runs the command's services in order, stopping at
// the first conclusive result. A panic inside a service becomes a hard
// failure for this turn only.
func (a *Assistant) execute(ctx context.Context, interp *domain.Interpretation) (result *domain.ServiceResult) {
	req := interp.Request
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("service execution panicked",
				zap.String("request", req.ID),
				zap.String("command", interp.Command.String()),
				zap.Any("panic", r),
			)
			result = a.failResult(interp.Language)
		}
	}()

	if aborted := a.collector.ApplyResponse(interp); aborted != nil {
		return aborted
	}

	list, err := a.resolver.ServicesFor(ctx, req, interp.Command)
	if err != nil {
		a.logger.Error("service resolution failed",
			zap.String("command", interp.Command.String()),
			zap.Error(err))
		return a.failResult(interp.Language)
	}
	if len(list) == 0 && interp.Command != domain.CommandNoResult {
		a.logger.Debug("no services for command, answering with no-result",
			zap.String("command", interp.Command.String()))
		list, _ = a.resolver.ServicesFor(ctx, req, domain.CommandNoResult)
	}
	if len(list) == 0 {
		return a.noAnswerResult(interp.Language)
	}

	var last *domain.ServiceResult
	for _, svc := range list {
		info := svc.Info()

		declared := make([]domain.Parameter, 0, len(info.RequiredParams)+len(info.OptionalParams))
		declared = append(declared, info.RequiredParams...)
		declared = append(declared, info.OptionalParams...)
		if question := a.collector.CollectRequired(interp, declared); question != nil {
			return question
		}

		builder := interview.NewBuilder(interp, a.answers, a.logger)
		res := svc.Run(ctx, builder)
		if res == nil {
			continue
		}
		last = res
		if res.IsIncomplete() || res.IsSuccess() || res.IsOkay() {
			return res
		}
	}
	if last != nil {
		return last
	}
	return a.noAnswerResult(interp.Language)
}

// repeatLast replays the previous answer of this session.
func (a *Assistant) repeatLast(ctx context.Context, req *domain.Request) *domain.ServiceResult {
	result := domain.NewServiceResult(req.Language)
	result.ContextTag = string(domain.CommandRepeat)
	if a.sessions != nil {
		if last, ok := a.sessions.LoadLast(ctx, req.SessionID); ok {
			result.Status = domain.StatusSuccess
			result.Answer = a.answers.Get(req.Language, answers.KeyRepeatLast, last.Answer)
			result.AnswerClean = answers.Clean(result.Answer)
			return result
		}
	}
	result.Status = domain.StatusOkay
	result.Answer = a.answers.Get(req.Language, answers.KeyRepeatNothing)
	result.AnswerClean = answers.Clean(result.Answer)
	return result
}

func (a *Assistant) failResult(language string) *domain.ServiceResult {
	result := domain.NewServiceResult(language)
	result.Status = domain.StatusFail
	result.Answer = a.answers.Get(language, answers.KeyError)
	result.AnswerClean = answers.Clean(result.Answer)
	return result
}

func (a *Assistant) noAnswerResult(language string) *domain.ServiceResult {
	result := domain.NewServiceResult(language)
	result.Status = domain.StatusOkay
	result.Answer = a.answers.Get(language, answers.KeyNoAnswer)
	result.AnswerClean = answers.Clean(result.Answer)
	return result
}
