package common

import (
	"github.com/lockhub-io/server/plugins/device/enums"
)

// ISecretProvider defines secrets provider which will be passed to every integration.
type ISecretProvider interface {
	Get(string) (string, error)
	Set(name string, data string) error
}

// ISettings describes interface used by every integration.
// After reading raw config, the hub will invoke internal validation
// and then call this method.
type ISettings interface {
	Validate() error
}

// MsgDeviceUpdate contains data with updated device's state.
type MsgDeviceUpdate struct {
	ID        string
	Name      string
	State     map[string]interface{}
	FirstSeen bool
	Type      enums.DeviceType
}

// IFanOutProvider defines interface used for distributing
// device updates across the system.
type IFanOutProvider interface {
	SubscribeDeviceUpdates() (int64, chan *MsgDeviceUpdate)
	UnSubscribeDeviceUpdates(int64)
}

// ILoggerProvider defines logger provider which will be passed to every integration.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
	Flush()
}
