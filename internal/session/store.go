package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/cache"
	"github.com/voxadev/voxa-assist-go/internal/constants"
)

// LastInteraction is what a session remembers: the command summary of the
// last answered turn (for repeat-by-re-run) and the answer text (for
// repeat-by-voice).
type LastInteraction struct {
	Summary string `json:"summary"`
	Answer  string `json:"answer"`
}

// Store keeps short-lived per-session dialog memory in Redis. Everything
// else about the dialog travels through client echo; this is only for
// "say that again".
type Store struct {
	cache  *cache.Service
	logger *zap.Logger
}

func NewStore(cacheSvc *cache.Service, logger *zap.Logger) *Store {
	return &Store{cache: cacheSvc, logger: logger}
}

func sessionKey(sessionID string) string {
	return "voxa:session:" + sessionID + ":last"
}

// SaveLast records the latest answered interaction of a session.
func (s *Store) SaveLast(ctx context.Context, sessionID string, last LastInteraction) {
	if sessionID == "" || s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, sessionKey(sessionID), last, constants.CacheTTL.LastCommand); err != nil {
		s.logger.Warn("session save failed", zap.String("session", sessionID), zap.Error(err))
	}
}

// LoadLast returns the last answered interaction of a session, if any.
func (s *Store) LoadLast(ctx context.Context, sessionID string) (LastInteraction, bool) {
	var last LastInteraction
	if sessionID == "" || s.cache == nil {
		return last, false
	}
	hit, err := s.cache.Get(ctx, sessionKey(sessionID), &last)
	if err != nil {
		s.logger.Warn("session load failed", zap.String("session", sessionID), zap.Error(err))
		return last, false
	}
	return last, hit && last.Answer != ""
}
