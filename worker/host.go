// Package worker contains the in-process device host which owns all
// loaded lock devices.
package worker

import (
	"sync"

	"github.com/lockhub-io/server/integrations"
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/systems"
	"github.com/lockhub-io/server/systems/lock"
)

const (
	// Default logger system.
	logSystem = "worker"
)

// Lock devices host.
type lockHost struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	mutex *sync.Mutex

	devices           map[string]providers.ILockWrapperProvider
	statusUpdatesChan chan *lock.UpdateEvent
	done              chan struct{}
}

// NewHost constructs a new device host.
// Devices are not loaded until Start is called.
func NewHost(settings providers.ISettingsProvider) providers.IDeviceHostProvider {
	return &lockHost{
		Settings: settings,
		Logger:   settings.SystemLogger(),

		mutex: &sync.Mutex{},

		devices:           make(map[string]providers.ILockWrapperProvider),
		statusUpdatesChan: make(chan *lock.UpdateEvent, 30),
		done:              make(chan struct{}),
	}
}

// Start loads configured devices and starts the updates cycle.
func (h *lockHost) Start() {
	h.loadDevices()
	go h.updatesCycle()

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, wrapper := range h.devices {
		h.publishUpdate(wrapper, true)
	}

	h.Logger.Info("Successfully started the device host", common.LogSystemToken, logSystem)
}

// Stop unloads all devices.
func (h *lockHost) Stop() {
	close(h.done)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, wrapper := range h.devices {
		wrapper.Unload()
	}

	h.devices = make(map[string]providers.ILockWrapperProvider)
}

// InvokeDeviceCommand invokes a command on a single device.
func (h *lockHost) InvokeDeviceCommand(deviceID string, cmd enums.Command,
	payload map[string]interface{}) error {
	wrapper := h.GetDevice(deviceID)
	if nil == wrapper {
		h.Logger.Warn("Failed to find device on this hub", common.LogSystemToken, logSystem,
			common.LogDeviceNameToken, deviceID, common.LogDeviceCommandToken, cmd.String())
		return &ErrUnknownDevice{DeviceID: deviceID}
	}

	return wrapper.InvokeCommand(cmd, payload)
}

// GetDevice returns a single loaded device or nil.
func (h *lockHost) GetDevice(deviceID string) providers.ILockWrapperProvider {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.devices[deviceID]
}

// GetAllDevices returns all loaded devices.
func (h *lockHost) GetAllDevices() []providers.ILockWrapperProvider {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	result := make([]providers.ILockWrapperProvider, 0, len(h.devices))
	for _, wrapper := range h.devices {
		result = append(result, wrapper)
	}

	return result
}

// Loads all configured lock devices.
// A single broken device doesn't prevent the rest from loading.
func (h *lockHost) loadDevices() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for _, raw := range h.Settings.DevicesConfig() {
		if enums.DevLock != raw.DeviceType {
			h.Logger.Warn("Skipping device of an unsupported type", common.LogSystemToken, logSystem,
				common.LogDeviceTypeToken, raw.DeviceType.String(), common.LogDeviceNameToken, raw.Name)
			continue
		}

		loaded, err := integrations.LoadDevice(&integrations.ConstructDevice{
			Integration: raw.Integration,
			ConfigName:  raw.Name,
			RawConfig:   raw.StrConfig,
			Settings:    h.Settings,
		})

		if err != nil {
			h.Logger.Error("Failed to load device", err, common.LogSystemToken, logSystem,
				common.LogIntegrationToken, raw.Integration, common.LogDeviceNameToken, raw.Name)
			continue
		}

		wrapper := lock.NewLockWrapper(&lock.ConstructWrapper{
			DeviceConfigName:  raw.Name,
			Integration:       raw.Integration,
			Device:            loaded.Device,
			DeviceState:       loaded.State,
			Logger:            h.Settings.PluginLogger(systems.SysDevice, raw.Integration),
			Cron:              h.Settings.Cron(),
			Executor:          h.Settings.Executor(),
			Registry:          h.Settings.Registry(),
			Validator:         h.Settings.Validator(),
			LoadData:          loaded.LoadData,
			StatusUpdatesChan: h.statusUpdatesChan,
		})

		if _, ok := h.devices[wrapper.ID()]; ok {
			h.Logger.Warn("Duplicate device ID, skipping", common.LogSystemToken, logSystem,
				common.LogDeviceNameToken, wrapper.ID())
			wrapper.Unload()
			continue
		}

		h.devices[wrapper.ID()] = wrapper
		h.Logger.Info("Successfully loaded device", common.LogSystemToken, logSystem,
			common.LogIntegrationToken, raw.Integration, common.LogDeviceNameToken, wrapper.ID())
	}
}

// Forwards device updates into the fan-out.
func (h *lockHost) updatesCycle() {
	for {
		select {
		case update := <-h.statusUpdatesChan:
			wrapper := h.GetDevice(update.ID)
			if nil == wrapper {
				h.Logger.Warn("Received unknown device update", common.LogSystemToken, logSystem,
					common.LogDeviceNameToken, update.ID)
				break
			}

			h.publishUpdate(wrapper, false)
		case <-h.done:
			return
		}
	}
}

// Publishes a single device update into the fan-out.
func (h *lockHost) publishUpdate(wrapper providers.ILockWrapperProvider, firstSeen bool) {
	msg := wrapper.GetUpdateMessage()
	msg.FirstSeen = firstSeen
	h.Settings.FanOut().ChannelInDeviceUpdates() <- msg
}
