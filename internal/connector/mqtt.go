package connector

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/config"
	"github.com/voxadev/voxa-assist-go/internal/constants"
	"github.com/voxadev/voxa-assist-go/internal/smarthome"
	"github.com/voxadev/voxa-assist-go/internal/util"
	"github.com/voxadev/voxa-assist-go/pkg/errors"
)

// MqttPublisher forwards device state changes to the smart-home broker.
// A circuit breaker guards the broker link so a dead hub fails fast instead
// of stalling every request for the publish timeout.
type MqttPublisher struct {
	client    mqtt.Client
	baseTopic string
	breaker   *util.CircuitBreaker
	logger    *zap.Logger
}

type statePayload struct {
	Device string `json:"device"`
	State  string `json:"state"`
}

func NewMqttPublisher(cfg config.MqttConfig, logger *zap.Logger) (*MqttPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(mqtt.Client) {
		logger.Info("MQTT connected", zap.String("broker", cfg.BrokerURL))
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", zap.Error(err))
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.NewConnectorError("MQTT connect failed", "mqtt", "connect", token.Error())
	}

	return &MqttPublisher{
		client:    client,
		baseTopic: cfg.BaseTopic,
		breaker: util.NewCircuitBreaker(
			constants.HubConfig.FailureThreshold,
			constants.HubConfig.ResetTimeout,
			logger,
		),
		logger: logger,
	}, nil
}

// PublishState pushes a state change to "<base>/set/<room>/<deviceType>".
func (p *MqttPublisher) PublishState(ctx context.Context, device smarthome.Device, state string) error {
	if !p.breaker.CanExecute() {
		return errors.NewConnectorError("hub link circuit open", "mqtt", "publish", nil)
	}

	payload, err := json.Marshal(statePayload{Device: device.ID, State: state})
	if err != nil {
		return errors.NewConnectorError("payload encode failed", "mqtt", "publish", err)
	}

	topic := fmt.Sprintf("%s/set/%s/%s", p.baseTopic, device.Room, device.Type)
	token := p.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(constants.HubConfig.PublishTimeout) {
		p.breaker.RecordFailure()
		return errors.NewConnectorError("publish timed out", "mqtt", "publish", nil)
	}
	if token.Error() != nil {
		p.breaker.RecordFailure()
		return errors.NewConnectorError("publish failed", "mqtt", "publish", token.Error())
	}

	p.breaker.RecordSuccess()
	p.logger.Debug("published device state",
		zap.String("topic", topic),
		zap.String("state", state))
	return nil
}

// Close disconnects from the broker.
func (p *MqttPublisher) Close() {
	p.client.Disconnect(250)
}
