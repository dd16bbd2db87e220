package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/param"
)

// MusicService turns a music request into a play action for the client.
// Playback itself happens client-side; the service only resolves who to
// play and where.
type MusicService struct {
	defaultProvider string
	logger          *zap.Logger
}

func NewMusicService(logger *zap.Logger) *MusicService {
	return &MusicService{
		defaultProvider: param.MusicServiceSpotify,
		logger:          logger,
	}
}

func (s *MusicService) Info() Descriptor {
	return Descriptor{
		ID:              "voxa.music_search",
		IntendedCommand: domain.CommandMusicSearch,
		RequiredParams: []domain.Parameter{
			domain.NewRequiredParameter(domain.ParamMusicArtist, answers.KeyAskArtist),
		},
		OptionalParams: []domain.Parameter{
			domain.NewOptionalParameter(domain.ParamMusicService, s.defaultProvider),
		},
		Answers: AnswerKeys{
			Success: answers.KeyMusicPlay,
			Okay:    answers.KeyNotPossible,
			Fail:    answers.KeyError,
		},
		Public: true,
	}
}

func (s *MusicService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	artist := b.Required(domain.ParamMusicArtist)
	provider := b.Optional(domain.ParamMusicService, s.defaultProvider)

	artistName := artist.ValueString()
	providerName := provider.ValueString()
	if providerName == "" {
		providerName = s.defaultProvider
	}

	b.SetStatusSuccess()
	b.SetCustomAnswer(answers.KeyMusicPlay, artistName)
	b.ResultInfoPut("artist", artistName)
	b.ResultInfoPut("service", providerName)
	b.AddAction(domain.ActionPlayMusic, map[string]any{
		"artist":  artistName,
		"service": providerName,
	})
	b.AddCard(map[string]any{
		"type":    "music",
		"title":   artistName,
		"service": providerName,
	})
	s.logger.Debug("music request resolved",
		zap.String("artist", artistName),
		zap.String("service", providerName))
	return b.Build()
}
