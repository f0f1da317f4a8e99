// Package providers describes internal provider contracts shared across systems.
package providers

import (
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/lockhub-io/server/systems"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider
	NodeID() string
	Cron() ICronProvider
	Validator() IValidatorProvider
	Executor() IExecutorProvider
	Registry() IRegistryProvider
	FanOut() IInternalFanOutProvider
	Secrets() common.ISecretProvider
	MasterSettings() *MasterSettings
	DevicesConfig() []*RawDevice
}

// RawDevice has data describing a device, loaded from config files.
type RawDevice struct {
	Integration string
	DeviceType  enums.DeviceType
	StrConfig   string
	Name        string
}

// MasterSettings has configured data for the hub node.
type MasterSettings struct {
	Port             int    `yaml:"port" validate:"required,port" default:"8000"`
	DelayedStart     int    `yaml:"delayedStart" validate:"gte=0"`
	ExecutorWorkers  int    `yaml:"executorWorkers" validate:"gte=1,lte=64" default:"4"`
	RegistryLocation string `yaml:"registryLocation"`
}
