package providers

import (
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
)

// ILockWrapperProvider interface for any loaded lock device.
type ILockWrapperProvider interface {
	ID() string
	Unload()
	InvokeCommand(enums.Command, map[string]interface{}) error
	GetUpdateMessage() *common.MsgDeviceUpdate
	Commands() []enums.Command
	Features() enums.LockFeature
}

// IDeviceHostProvider defines the in-process device host which owns
// all loaded lock wrappers.
type IDeviceHostProvider interface {
	Start()
	Stop()
	InvokeDeviceCommand(deviceID string, cmd enums.Command, payload map[string]interface{}) error
	GetDevice(deviceID string) ILockWrapperProvider
	GetAllDevices() []ILockWrapperProvider
}
