package services

import (
	"context"
	"regexp"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
)

var (
	helloPattern  = regexp.MustCompile(`\b(hello|hi|hey|good (morning|evening)|hallo|moin|servus|guten (morgen|abend))\b`)
	thanksPattern = regexp.MustCompile(`\b(thank(s| you)|danke( schoen)?)\b`)
)

// ChatService handles small talk, the soft landing for anything that is
// conversation rather than a command.
type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

func (s *ChatService) Info() Descriptor {
	return Descriptor{
		ID:              "voxa.chat",
		IntendedCommand: domain.CommandChat,
		Answers: AnswerKeys{
			Success: answers.KeyChatGeneric,
			Okay:    answers.KeyChatGeneric,
			Fail:    answers.KeyError,
		},
		Public: true,
	}
}

func (s *ChatService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	text := b.Req.TextNorm
	b.SetStatusSuccess()
	switch {
	case helloPattern.MatchString(text):
		b.SetCustomAnswer(answers.KeyChatHello)
	case thanksPattern.MatchString(text):
		b.SetCustomAnswer(answers.KeyChatThanks)
	default:
		b.SetCustomAnswer(answers.KeyChatGeneric)
	}
	return b.Build()
}
