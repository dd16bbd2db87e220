package smarthome

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/pkg/errors"
)

// Device is one controllable endpoint known to the hub.
type Device struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Room      string `json:"room"`
	RoomIndex int    `json:"room_index,omitempty"`
	State     string `json:"state"`
	StateType string `json:"state_type,omitempty"`
	Tag       string `json:"tag,omitempty"`
}

// Filter narrows a device lookup. Empty fields match everything.
type Filter struct {
	Type      string
	Room      string
	RoomIndex int
	Tag       string
}

// Hub answers device lookups and forwards state changes to the physical
// smart-home installation.
type Hub interface {
	FilterDevices(ctx context.Context, filter Filter) ([]Device, error)
	SetState(ctx context.Context, device Device, state, stateType string) error
}

// StatePublisher pushes a state change out to the installation. The MQTT
// connector implements this.
type StatePublisher interface {
	PublishState(ctx context.Context, device Device, state string) error
}

// registryHub keeps the device inventory in memory and delegates state
// changes to a publisher. Writers swap in a fresh slice, so a snapshot
// handed to a reader is never written again.
type registryHub struct {
	mu        sync.RWMutex
	devices   []Device
	publisher StatePublisher
	logger    *zap.Logger
}

// NewRegistryHub builds a hub over a static device inventory.
func NewRegistryHub(devices []Device, publisher StatePublisher, logger *zap.Logger) Hub {
	return &registryHub{
		devices:   devices,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *registryHub) FilterDevices(ctx context.Context, filter Filter) ([]Device, error) {
	h.mu.RLock()
	snapshot := h.devices
	h.mu.RUnlock()

	matched := make([]Device, 0, len(snapshot))
	for _, d := range snapshot {
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Room != "" && d.Room != filter.Room {
			continue
		}
		if filter.RoomIndex > 0 && d.RoomIndex != filter.RoomIndex {
			continue
		}
		if filter.Tag != "" && !strings.EqualFold(d.Tag, filter.Tag) {
			continue
		}
		matched = append(matched, d)
	}
	return matched, nil
}

func (h *registryHub) SetState(ctx context.Context, device Device, state, stateType string) error {
	if h.publisher == nil {
		return errors.NewConnectorError("no state publisher configured", "hub", "set_state", nil)
	}
	if err := h.publisher.PublishState(ctx, device, state); err != nil {
		return err
	}

	h.mu.Lock()
	next := make([]Device, len(h.devices))
	copy(next, h.devices)
	for i := range next {
		if next[i].ID == device.ID {
			next[i].State = state
			if stateType != "" {
				next[i].StateType = stateType
			}
			break
		}
	}
	h.devices = next
	h.mu.Unlock()

	h.logger.Info("device state updated",
		zap.String("device", device.ID),
		zap.String("state", state))
	return nil
}
