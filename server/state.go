package server

import (
	"sync"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/utils"
)

// IServerStateProvider defines server state logic.
type IServerStateProvider interface {
	Update(msg *common.MsgDeviceUpdate)
	GetAllDevices() []*knownDevice
	GetDevice(string) *knownDevice
	Stop()
}

// Last reported device snapshots.
type serverState struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	KnownDevices map[string]*knownDevice

	deviceMutex *sync.Mutex

	host     providers.IDeviceHostProvider
	fanOutID int64
	done     chan struct{}
}

// Constructs a new server state.
// State subscribes to the device updates fan-out and keeps the last
// snapshot of every device it has ever seen.
func newServerState(settings providers.ISettingsProvider, host providers.IDeviceHostProvider) *serverState {
	s := serverState{
		KnownDevices: make(map[string]*knownDevice),
		Settings:     settings,
		Logger:       settings.SystemLogger(),

		deviceMutex: &sync.Mutex{},

		host: host,
		done: make(chan struct{}),
	}

	id, updates := settings.FanOut().SubscribeDeviceUpdates()
	s.fanOutID = id
	go s.updatesCycle(updates)

	return &s
}

// Stop un-subscribes from the fan-out.
func (s *serverState) Stop() {
	close(s.done)
	s.Settings.FanOut().UnSubscribeDeviceUpdates(s.fanOutID)
}

// Update processes incoming device update message.
func (s *serverState) Update(msg *common.MsgDeviceUpdate) {
	s.Logger.Debug("Received update for the device", common.LogDeviceTypeToken, msg.Type.String(),
		common.LogSystemToken, logSystem, common.LogDeviceNameToken, msg.ID)

	s.deviceMutex.Lock()
	defer s.deviceMutex.Unlock()

	dv, ok := s.KnownDevices[msg.ID]
	if !ok {
		dv = &knownDevice{
			ID:    msg.ID,
			Name:  msg.Name,
			Type:  msg.Type,
			State: make(map[string]interface{}),
		}

		s.KnownDevices[msg.ID] = dv
	}

	dv.LastSeen = utils.TimeNow()

	if wrapper := s.host.GetDevice(msg.ID); nil != wrapper {
		commands := wrapper.Commands()
		dv.Commands = make([]string, 0, len(commands))
		for _, v := range commands {
			dv.Commands = append(dv.Commands, v.String())
		}

		dv.Features = wrapper.Features().String()
	}

	for k, v := range msg.State {
		dv.State[k] = v
	}

	// Derived attributes disappear when their signals do.
	for _, k := range []string{"status", "changed_by", "code_format"} {
		if _, ok := msg.State[k]; !ok {
			delete(dv.State, k)
		}
	}
}

// GetAllDevices returns list of all known devices.
func (s *serverState) GetAllDevices() []*knownDevice {
	s.deviceMutex.Lock()
	defer s.deviceMutex.Unlock()

	devices := make([]*knownDevice, 0)
	for _, v := range s.KnownDevices {
		devices = append(devices, v)
	}

	return devices
}

// GetDevice returns device by ID.
func (s *serverState) GetDevice(deviceID string) *knownDevice {
	s.deviceMutex.Lock()
	defer s.deviceMutex.Unlock()
	return s.KnownDevices[deviceID]
}

// Processes incoming fan-out messages.
func (s *serverState) updatesCycle(updates chan *common.MsgDeviceUpdate) {
	for {
		select {
		case msg, ok := <-updates:
			if !ok {
				return
			}

			s.Update(msg)
		case <-s.done:
			return
		}
	}
}
