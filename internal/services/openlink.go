package services

import (
	"context"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
)

// OpenLinkService sends an open-URL action. The URL always arrives as a
// direct command parameter (custom commands and plugins use this), so
// nothing is declared for the interview.
type OpenLinkService struct{}

func NewOpenLinkService() *OpenLinkService {
	return &OpenLinkService{}
}

func (s *OpenLinkService) Info() Descriptor {
	return Descriptor{
		ID:              "voxa.open_link",
		IntendedCommand: domain.CommandOpenLink,
		Answers: AnswerKeys{
			Success: answers.KeyOpenLink,
			Okay:    answers.KeyNotPossible,
			Fail:    answers.KeyError,
		},
		Public: true,
	}
}

func (s *OpenLinkService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	url := b.Interp.Param(domain.ParamURL)
	if url == "" {
		b.SetStatusOkay()
		b.SetCustomAnswer(answers.KeyNotPossible)
		return b.Build()
	}

	b.SetStatusSuccess()
	b.SetCustomAnswer(answers.KeyOpenLink)
	b.ResultInfoPut("url", url)
	b.AddAction(domain.ActionOpenURL, map[string]any{"url": url})
	return b.Build()
}
