package services

import (
	"context"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
)

// NoResultService answers when no interpretation reached the confidence
// floor. A custom fallback key lets deployments brand the "I don't know"
// answer.
type NoResultService struct {
	fallbackKey string
}

func NewNoResultService(fallbackKey string) *NoResultService {
	if fallbackKey == "" {
		fallbackKey = answers.KeyNoAnswer
	}
	return &NoResultService{fallbackKey: fallbackKey}
}

func (s *NoResultService) Info() Descriptor {
	return Descriptor{
		ID:              "voxa.no_result",
		IntendedCommand: domain.CommandNoResult,
		Answers: AnswerKeys{
			Success: s.fallbackKey,
			Okay:    s.fallbackKey,
			Fail:    answers.KeyError,
		},
		Public: true,
	}
}

func (s *NoResultService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	b.SetStatusOkay()
	b.SetCustomAnswer(s.fallbackKey)
	return b.Build()
}

// AbortService ends whatever dialog the client still echoes.
type AbortService struct{}

func NewAbortService() *AbortService {
	return &AbortService{}
}

func (s *AbortService) Info() Descriptor {
	return Descriptor{
		ID:              "voxa.abort",
		IntendedCommand: domain.CommandAbort,
		Answers: AnswerKeys{
			Success: answers.KeyAbort,
			Okay:    answers.KeyAbort,
			Fail:    answers.KeyError,
		},
		Public: true,
	}
}

func (s *AbortService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	b.SetStatusOkay()
	b.SetCustomAnswer(answers.KeyAbort)
	return b.Build()
}
