// Package integrations contains compiled-in lock integrations and their loader.
package integrations

import (
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/systems"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BuildDevice is an integration entry point. It returns a new device
// instance along with its settings object used for config un-marshal.
type BuildDevice func() (device.ILock, common.ISettings)

var builders = make(map[string]BuildDevice)

// Register adds a new integration. Called from integration packages' init.
func Register(integration string, builder BuildDevice) {
	builders[integration] = builder
}

// ConstructDevice contains params required for loading a new device.
type ConstructDevice struct {
	Integration string
	ConfigName  string
	RawConfig   string
	Settings    providers.ISettingsProvider
}

// LoadedDevice is a result of a successful device load.
type LoadedDevice struct {
	Device   device.ILock
	State    *device.LockState
	LoadData *device.InitDataDevice
}

// LoadDevice loads a single lock device.
// Config is un-marshaled into the integration's settings object and
// validated before the device is initialized.
func LoadDevice(ctor *ConstructDevice) (*LoadedDevice, error) {
	builder, ok := builders[ctor.Integration]
	if !ok {
		return nil, &ErrUnknownIntegration{Integration: ctor.Integration}
	}

	pluginLogger := ctor.Settings.PluginLogger(systems.SysDevice, ctor.Integration)

	dev, settings := builder()
	if nil != settings && "" != ctor.RawConfig {
		err := yaml.Unmarshal([]byte(ctor.RawConfig), settings)
		if err != nil {
			return nil, errors.Wrap(err, "yaml un-marshal failed")
		}

		if !ctor.Settings.Validator().Validate(settings) {
			return nil, &ErrInvalidConfig{}
		}

		err = settings.Validate()
		if err != nil {
			return nil, errors.Wrap(err, "settings validate failed")
		}
	}

	loadData := &device.InitDataDevice{
		Logger:                pluginLogger,
		Secret:                ctor.Settings.Secrets(),
		DeviceStateUpdateChan: make(chan *device.StateUpdateData, 10),
	}

	err := dev.Init(loadData)
	if err != nil {
		pluginLogger.Error("Failed to init device", err)
		return nil, errors.Wrap(err, "init failed")
	}

	state, err := dev.Load()
	if err != nil {
		pluginLogger.Error("Failed to load device", err)
		return nil, errors.Wrap(err, "load failed")
	}

	return &LoadedDevice{
		Device:   dev,
		State:    state,
		LoadData: loadData,
	}, nil
}
