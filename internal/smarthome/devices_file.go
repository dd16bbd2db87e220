package smarthome

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voxadev/voxa-assist-go/pkg/errors"
)

type deviceFile struct {
	Devices []deviceEntry `yaml:"devices"`
}

type deviceEntry struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Room      string `yaml:"room"`
	RoomIndex int    `yaml:"room_index"`
	State     string `yaml:"state"`
	StateType string `yaml:"state_type"`
	Tag       string `yaml:"tag"`
}

// LoadDevicesFile reads the device inventory from a YAML file. A missing
// file is an empty inventory, not an error; a deployment without smart-home
// hardware just never matches a device.
func LoadDevicesFile(path string) ([]Device, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewConnectorError("device file unreadable", "hub", "load", err)
	}

	var file deviceFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.NewConnectorError("device file parse failed", "hub", "load", err)
	}

	devices := make([]Device, 0, len(file.Devices))
	for _, e := range file.Devices {
		if e.ID == "" || e.Type == "" {
			continue
		}
		state := e.State
		if state == "" {
			state = "off"
		}
		devices = append(devices, Device{
			ID:        e.ID,
			Name:      e.Name,
			Type:      e.Type,
			Room:      e.Room,
			RoomIndex: e.RoomIndex,
			State:     state,
			StateType: e.StateType,
			Tag:       e.Tag,
		})
	}
	return devices, nil
}
