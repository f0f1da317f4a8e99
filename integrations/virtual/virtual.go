// Package virtual implements a simulated lock integration.
// It is useful for testing hub setups without real hardware.
package virtual

import (
	"sync"
	"time"

	"github.com/lockhub-io/server/integrations"
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device"
	"github.com/lockhub-io/server/plugins/device/enums"
)

// Settings describes virtual lock config.
type Settings struct {
	Name            string `yaml:"name" default:"virtual"`
	CodeFormat      string `yaml:"codeFormat" validate:"regexpattern"`
	SupportsOpen    bool   `yaml:"supportsOpen"`
	UnlockedAtStart bool   `yaml:"unlockedAtStart"`
	TransitionTime  int    `yaml:"transitionTime" validate:"gte=0"`
	PollingInterval int    `yaml:"pollingInterval" validate:"gte=0" default:"30"`
	JamEvery        int    `yaml:"jamEvery" validate:"gte=0"`
}

// Validate settings.
func (s *Settings) Validate() error {
	return nil
}

// VirtualLock implements a simulated lock device.
type VirtualLock struct {
	mutex    sync.Mutex
	Settings *Settings

	logger  common.ILoggerProvider
	updates chan *device.StateUpdateData
	state   device.LockState

	commandsSeen int
}

func init() {
	integrations.Register("virtual", func() (device.ILock, common.ISettings) {
		settings := &Settings{}
		return &VirtualLock{Settings: settings}, settings
	})
}

// Init performs initial device setup.
func (v *VirtualLock) Init(data *device.InitDataDevice) error {
	v.logger = data.Logger
	v.updates = data.DeviceStateUpdateChan
	return nil
}

// Unload stops the device.
func (v *VirtualLock) Unload() {
}

// GetName returns device name.
func (v *VirtualLock) GetName() string {
	return v.Settings.Name
}

// GetSpec returns device spec.
func (v *VirtualLock) GetSpec() *device.Spec {
	spec := &device.Spec{
		UpdatePeriod:      time.Duration(v.Settings.PollingInterval) * time.Second,
		SupportedCommands: []enums.Command{enums.CmdLock, enums.CmdUnlock},
	}

	if v.Settings.SupportsOpen {
		spec.SupportedCommands = append(spec.SupportedCommands, enums.CmdOpen)
		spec.SupportedFeatures = enums.FeatureOpen
	}

	return spec
}

// Load performs initial device load.
func (v *VirtualLock) Load() (*device.LockState, error) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	locked := !v.Settings.UnlockedAtStart
	v.state = device.LockState{
		IsLocked:   &locked,
		CodeFormat: v.Settings.CodeFormat,
	}

	return v.snapshot(), nil
}

// Update returns current device state.
func (v *VirtualLock) Update() (*device.LockState, error) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	return v.snapshot(), nil
}

// Lock locks the device.
func (v *VirtualLock) Lock(req common.LockRequest) error {
	return v.transition(req, true)
}

// Unlock unlocks the device.
func (v *VirtualLock) Unlock(req common.LockRequest) error {
	return v.transition(req, false)
}

// Open unlatches the device.
func (v *VirtualLock) Open(req common.LockRequest) error {
	if !v.Settings.SupportsOpen {
		return &ErrOpenNotSupported{}
	}

	return v.transition(req, false)
}

// Performs a simulated transition into the target position.
// When transition time is configured, an intermediate locking or
// unlocking state is pushed through the updates channel first.
func (v *VirtualLock) transition(req common.LockRequest, target bool) error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.commandsSeen++
	if v.Settings.JamEvery > 0 && 0 == v.commandsSeen%v.Settings.JamEvery {
		jammed := true
		v.state.IsJammed = &jammed
		v.state.IsLocking = nil
		v.state.IsUnlocking = nil
		v.pushUpdate()
		return nil
	}

	v.state.ChangedBy = changedBy(req)
	v.state.IsJammed = nil

	if v.Settings.TransitionTime > 0 {
		inTransition := true
		if target {
			v.state.IsLocking = &inTransition
		} else {
			v.state.IsUnlocking = &inTransition
		}

		v.pushUpdate()
		time.AfterFunc(time.Duration(v.Settings.TransitionTime)*time.Second, func() {
			v.completeTransition(target)
		})
		return nil
	}

	v.settle(target)
	v.pushUpdate()
	return nil
}

// Finishes a delayed transition.
func (v *VirtualLock) completeTransition(target bool) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.settle(target)
	v.pushUpdate()
}

// Sets the final position, clearing transition signals.
func (v *VirtualLock) settle(target bool) {
	v.state.IsLocked = &target
	v.state.IsLocking = nil
	v.state.IsUnlocking = nil
}

// Sends current state through the updates channel.
// The send never blocks, a slow consumer loses intermediate states.
func (v *VirtualLock) pushUpdate() {
	if nil == v.updates {
		return
	}

	select {
	case v.updates <- &device.StateUpdateData{State: v.snapshot()}:
	default:
	}
}

// Returns a copy of the current state.
func (v *VirtualLock) snapshot() *device.LockState {
	state := v.state
	return &state
}

// Describes who triggered the state change.
func changedBy(req common.LockRequest) string {
	if "" != req.Code {
		return "code"
	}

	return "api"
}
