package resolve

import (
	"context"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/services"
)

// Resolver maps a selected command to the ordered services that execute it.
// System commands come from the static table; owner-scoped custom commands
// come from the owner's command map, their service ids resolved against
// plugins and the system catalog.
type Resolver struct {
	system   map[domain.Command][]services.Service
	byID     map[string]services.Service
	registry *PluginRegistry
	maps     *CommandMapStore
	logger   *zap.Logger
}

func NewResolver(registry *PluginRegistry, maps *CommandMapStore, logger *zap.Logger) *Resolver {
	return &Resolver{
		system:   make(map[domain.Command][]services.Service),
		byID:     make(map[string]services.Service),
		registry: registry,
		maps:     maps,
		logger:   logger,
	}
}

// RegisterSystem adds a built-in service under its intended command.
// Registration order is execution order; the first service of a command is
// its master.
func (r *Resolver) RegisterSystem(svc services.Service) {
	info := svc.Info()
	r.system[info.IntendedCommand] = append(r.system[info.IntendedCommand], svc)
	r.byID[info.ID] = svc
}

// ServicesFor resolves the services of a command for a request. An empty
// result means nothing can handle the command; callers fall back to the
// no-result answer. A cold or failing command-map store never fails
// resolution, it only hides custom commands for this turn.
func (r *Resolver) ServicesFor(ctx context.Context, req *domain.Request, cmd domain.Command) ([]services.Service, error) {
	if !cmd.IsCustom() {
		return r.system[cmd], nil
	}

	for _, mapping := range r.commandsFor(ctx, req, cmd.Owner()) {
		if mapping.Command != cmd {
			continue
		}
		return r.resolveIDs(req, cmd, mapping.Services), nil
	}
	r.logger.Debug("custom command not in owner map", zap.String("command", cmd.String()))
	return nil, nil
}

// Master returns the service that owns a command's dialog, by convention
// the first resolved one.
func Master(list []services.Service) services.Service {
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

// LoadCommands is the interpretation-time view of the request owner's
// custom commands plus visible plugin triggers. Failures degrade to plugin
// triggers only; interpretation never hard-fails on a cold store.
func (r *Resolver) LoadCommands(req *domain.Request) []domain.CommandMapping {
	ownerID := ""
	if req.User != nil {
		ownerID = req.User.ID
	}

	var mappings []domain.CommandMapping
	if ownerID != "" {
		mappings = append(mappings, r.commandsFor(context.Background(), req, ownerID)...)
	}
	if r.registry != nil {
		mappings = append(mappings, r.registry.Mappings(req.User)...)
	}
	return mappings
}

// commandsFor loads an owner's command map once per request. A store failure
// degrades to an empty map so resolution continues without custom commands.
func (r *Resolver) commandsFor(ctx context.Context, req *domain.Request, ownerID string) []domain.CommandMapping {
	if cached, loaded := req.CustomCommands(); loaded {
		return cached
	}
	mappings, err := r.maps.MappingsFor(ctx, ownerID)
	if err != nil {
		r.logger.Warn("owner command map unavailable",
			zap.String("owner", ownerID), zap.Error(err))
		mappings = nil
	}
	req.SetCustomCommands(mappings)
	return mappings
}

func (r *Resolver) resolveIDs(req *domain.Request, cmd domain.Command, ids []string) []services.Service {
	resolved := make([]services.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := r.byID[id]
		if !ok && r.registry != nil {
			svc, ok = r.registry.ServiceByID(id)
		}
		if !ok {
			r.logger.Warn("unknown service id in command map",
				zap.String("command", cmd.String()),
				zap.String("service", id))
			continue
		}

		info := svc.Info()
		if !info.Public {
			requester := ""
			if req.User != nil {
				requester = req.User.ID
			}
			if requester == "" || requester != info.OwnerID {
				r.logger.Debug("private service hidden from requester",
					zap.String("service", id),
					zap.String("requester", requester))
				continue
			}
		}
		resolved = append(resolved, svc)
	}
	return resolved
}
