// Package device contains device integration contracts.
package device

import (
	"time"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
)

// IDevice defines generic device integration interface.
type IDevice interface {
	Init(*InitDataDevice) error
	Unload()
	GetName() string
	GetSpec() *Spec
}

// Spec contains information about the device.
type Spec struct {
	UpdatePeriod           time.Duration
	SupportedCommands      []enums.Command
	SupportedFeatures      enums.LockFeature
	PostCommandDeferUpdate time.Duration
}

// StateUpdateData contains updated state of the device.
type StateUpdateData struct {
	State interface{}
}

// InitDataDevice has data required for initializing a new device.
type InitDataDevice struct {
	Logger common.ILoggerProvider
	Secret common.ISecretProvider

	DeviceStateUpdateChan chan *StateUpdateData
}
