package resolve

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/services"
	"github.com/voxadev/voxa-assist-go/pkg/errors"
)

// Capabilities a plugin manifest may not request. The boundary is advisory:
// plugins are declarative manifests, not code, so the check guards the
// catalog rather than a sandbox.
var blacklistedCapabilities = map[string]bool{
	"server":    true,
	"database":  true,
	"interview": true,
	"email":     true,
}

// PluginManifest is one YAML file in the plugin directory. A plugin
// contributes a command with trigger phrases and a declared result: a fixed
// localized answer and optionally a URL to open.
type PluginManifest struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Owner        string            `yaml:"owner"`
	Command      string            `yaml:"command"`
	Public       bool              `yaml:"public"`
	Capabilities []string          `yaml:"capabilities"`
	Triggers     []string          `yaml:"triggers"`
	Answers      map[string]string `yaml:"answers"` // language -> text
	URL          string            `yaml:"url"`
}

func (m *PluginManifest) validate() error {
	if m.ID == "" {
		return errors.NewPluginError("manifest missing id", "", nil)
	}
	if m.Command == "" {
		return errors.NewPluginError("manifest missing command", m.ID, nil)
	}
	for _, cap := range m.Capabilities {
		if blacklistedCapabilities[strings.ToLower(cap)] {
			return errors.NewPluginError("blacklisted capability: "+cap, m.ID, nil)
		}
	}
	return nil
}

// PluginRegistry loads and indexes plugin manifests. Each entry is isolated:
// a bad manifest is logged and skipped, never fatal.
type PluginRegistry struct {
	logger *zap.Logger

	mu   sync.RWMutex
	byID map[string]*pluginService
}

func NewPluginRegistry(logger *zap.Logger) *PluginRegistry {
	return &PluginRegistry{
		logger: logger,
		byID:   make(map[string]*pluginService),
	}
}

// LoadDir parses every YAML manifest in a directory. Returns the number of
// plugins accepted; a missing directory is an empty catalog.
func (r *PluginRegistry) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info("no plugin directory, skipping", zap.String("dir", dir))
			return 0, nil
		}
		return 0, errors.NewPluginError("plugin directory unreadable", dir, err)
	}

	loaded := 0
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		manifest, err := r.loadManifest(path)
		if err != nil {
			r.logger.Warn("plugin rejected",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}

		r.mu.Lock()
		r.byID[manifest.ID] = &pluginService{manifest: manifest}
		r.mu.Unlock()
		loaded++
		r.logger.Info("plugin loaded",
			zap.String("id", manifest.ID),
			zap.String("command", manifest.Command),
			zap.Bool("public", manifest.Public))
	}
	return loaded, nil
}

func (r *PluginRegistry) loadManifest(path string) (*PluginManifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewPluginError("manifest unreadable", path, err)
	}
	var manifest PluginManifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, errors.NewPluginError("manifest parse failed", path, err)
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// ServiceByID returns a plugin as an executable service.
func (r *PluginRegistry) ServiceByID(id string) (services.Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.byID[id]
	return svc, ok
}

// Mappings lists the trigger mappings plugins contribute to interpretation,
// restricted to what the requesting user may see. Sorted by command for
// deterministic matching order.
func (r *PluginRegistry) Mappings(user *domain.User) []domain.CommandMapping {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var mappings []domain.CommandMapping
	for _, svc := range r.byID {
		m := svc.manifest
		if !m.Public && (user == nil || user.ID != m.Owner) {
			continue
		}
		if len(m.Triggers) == 0 {
			continue
		}
		mappings = append(mappings, domain.CommandMapping{
			Command:  domain.Command(m.Command),
			Services: []string{m.ID},
			Triggers: m.Triggers,
		})
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].Command < mappings[j].Command })
	return mappings
}

// pluginService executes a manifest: declared answer plus optional open-URL
// action.
type pluginService struct {
	manifest *PluginManifest
}

func (p *pluginService) Info() services.Descriptor {
	return services.Descriptor{
		ID:              p.manifest.ID,
		IntendedCommand: domain.Command(p.manifest.Command),
		Answers: services.AnswerKeys{
			Success: answers.KeyOk,
			Okay:    answers.KeyNotPossible,
			Fail:    answers.KeyError,
		},
		Public:  p.manifest.Public,
		OwnerID: p.manifest.Owner,
	}
}

func (p *pluginService) Run(ctx context.Context, b *interview.Builder) *domain.ServiceResult {
	b.SetStatusSuccess()

	answer := p.manifest.Answers[b.Interp.Language]
	if answer == "" {
		answer = p.manifest.Answers["en"]
	}
	if answer != "" {
		result := b.Build()
		result.Answer = answer
		result.AnswerClean = answers.Clean(answer)
		if p.manifest.URL != "" {
			result.Actions = append(result.Actions, map[string]any{
				"type": domain.ActionOpenURL,
				"url":  p.manifest.URL,
			})
		}
		return result
	}

	b.SetCustomAnswer(answers.KeyOk)
	if p.manifest.URL != "" {
		b.AddAction(domain.ActionOpenURL, map[string]any{"url": p.manifest.URL})
	}
	return b.Build()
}
