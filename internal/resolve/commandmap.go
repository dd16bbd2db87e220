package resolve

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/cache"
	"github.com/voxadev/voxa-assist-go/internal/constants"
	"github.com/voxadev/voxa-assist-go/internal/domain"
)

// MappingSource is the persistent home of owner command maps.
type MappingSource interface {
	CommandMappingsFor(ctx context.Context, ownerID string) ([]domain.CommandMapping, error)
}

// CommandMapStore layers owner command maps: in-process snapshot, then
// Redis, then the database. Refreshes swap the whole per-owner slice, so a
// snapshot handed to a request never changes under it.
type CommandMapStore struct {
	source MappingSource
	cache  *cache.Service // optional
	logger *zap.Logger

	mu      sync.RWMutex
	byOwner map[string][]domain.CommandMapping
}

func NewCommandMapStore(source MappingSource, cacheSvc *cache.Service, logger *zap.Logger) *CommandMapStore {
	return &CommandMapStore{
		source:  source,
		cache:   cacheSvc,
		logger:  logger,
		byOwner: make(map[string][]domain.CommandMapping),
	}
}

func commandMapKey(ownerID string) string {
	return "voxa:commands:" + ownerID
}

// MappingsFor returns the command map of one owner, loading through the
// cache layers on first use.
func (s *CommandMapStore) MappingsFor(ctx context.Context, ownerID string) ([]domain.CommandMapping, error) {
	s.mu.RLock()
	snapshot, ok := s.byOwner[ownerID]
	s.mu.RUnlock()
	if ok {
		return snapshot, nil
	}

	if s.cache != nil {
		var cached []domain.CommandMapping
		hit, err := s.cache.Get(ctx, commandMapKey(ownerID), &cached)
		if err == nil && hit {
			s.keep(ownerID, cached)
			return cached, nil
		}
	}

	mappings, err := s.source.CommandMappingsFor(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.keep(ownerID, mappings)

	if s.cache != nil {
		if err := s.cache.Set(ctx, commandMapKey(ownerID), mappings, constants.CacheTTL.CommandMap); err != nil {
			s.logger.Warn("command map cache write failed",
				zap.String("owner", ownerID), zap.Error(err))
		}
	}
	return mappings, nil
}

// Invalidate drops every cached copy of one owner's command map. Called
// after an owner edits their commands.
func (s *CommandMapStore) Invalidate(ctx context.Context, ownerID string) {
	s.mu.Lock()
	delete(s.byOwner, ownerID)
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Del(ctx, commandMapKey(ownerID)); err != nil {
			s.logger.Warn("command map cache invalidation failed",
				zap.String("owner", ownerID), zap.Error(err))
		}
	}
}

func (s *CommandMapStore) keep(ownerID string, mappings []domain.CommandMapping) {
	s.mu.Lock()
	s.byOwner[ownerID] = mappings
	s.mu.Unlock()
}
