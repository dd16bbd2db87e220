package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/answers"
	"github.com/voxadev/voxa-assist-go/internal/assist"
	"github.com/voxadev/voxa-assist-go/internal/cache"
	"github.com/voxadev/voxa-assist-go/internal/config"
	"github.com/voxadev/voxa-assist-go/internal/connector"
	"github.com/voxadev/voxa-assist-go/internal/gateway"
	"github.com/voxadev/voxa-assist-go/internal/interview"
	"github.com/voxadev/voxa-assist-go/internal/nlu"
	"github.com/voxadev/voxa-assist-go/internal/resolve"
	"github.com/voxadev/voxa-assist-go/internal/services"
	"github.com/voxadev/voxa-assist-go/internal/session"
	"github.com/voxadev/voxa-assist-go/internal/smarthome"
	"github.com/voxadev/voxa-assist-go/internal/stats"
	"github.com/voxadev/voxa-assist-go/internal/storage"
)

// Container bundles the assembled pipeline. Heavy initialization (cache,
// database, broker, plugin catalog) happens in Build so the rest of the
// code receives ready dependencies.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Server *gateway.Server

	closers []func()
}

// Close releases infrastructure in reverse build order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles the full dependency graph. Redis and PostgreSQL are
// required; the MQTT broker and the device inventory degrade gracefully so
// the assistant keeps answering without smart-home hardware.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	cacheSvc, err := cache.NewService(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() { _ = cacheSvc.Close() })

	store, err := storage.NewPostgresStore(storage.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres store: %w", err)
	}
	closers = append(closers, func() { _ = store.Close() })

	// Smart home: broker and inventory are optional hardware.
	var publisher smarthome.StatePublisher
	mqttPub, err := connector.NewMqttPublisher(cfg.Mqtt, logger)
	if err != nil {
		logger.Warn("MQTT unavailable, smart-home state changes will fail", zap.Error(err))
	} else {
		publisher = mqttPub
		closers = append(closers, mqttPub.Close)
	}

	devices, err := smarthome.LoadDevicesFile(cfg.Smarthome.DevicesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load device inventory: %w", err)
	}
	logger.Info("device inventory loaded", zap.Int("devices", len(devices)))
	hub := smarthome.NewRegistryHub(devices, publisher, logger)

	registry := resolve.NewPluginRegistry(logger)
	loaded, err := registry.LoadDir(cfg.Plugins.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}
	logger.Info("plugin catalog ready", zap.Int("plugins", loaded))

	commandMaps := resolve.NewCommandMapStore(store, cacheSvc, logger)
	resolver := resolve.NewResolver(registry, commandMaps, logger)
	resolver.RegisterSystem(services.NewSmartDeviceService(hub, logger))
	resolver.RegisterSystem(services.NewMusicService(logger))
	resolver.RegisterSystem(services.NewChatService())
	resolver.RegisterSystem(services.NewOpenLinkService())
	resolver.RegisterSystem(services.NewNoResultService(""))
	resolver.RegisterSystem(services.NewAbortService())

	answerStore := answers.NewStore(logger)
	sessions := session.NewStore(cacheSvc, logger)
	recorder := stats.NewRecorder(store, logger)
	closers = append(closers, recorder.Close)

	chain := nlu.NewChain(nlu.DefaultSteps(resolver.LoadCommands), cfg.Assistant.ConfidenceFloor, logger)
	collector := interview.NewCollector(answerStore, logger)
	assistant := assist.NewAssistant(chain, resolver, collector, answerStore, sessions, recorder, logger)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Server:  gateway.NewServer(assistant, cfg, logger),
		closers: closers,
	}, nil
}
