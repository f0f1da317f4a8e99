//+build !release

package mocks

import (
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/systems"
)

// IFakeSettings adds additional capabilities to a fake settings provider.
type IFakeSettings interface {
	AddMasterSettings(*providers.MasterSettings)
	AddDevices([]*providers.RawDevice)
	AddRegistry(providers.IRegistryProvider)
	AddExecutor(providers.IExecutorProvider)
	AddFanOut(providers.IInternalFanOutProvider)
}

type fakeSettings struct {
	logger         common.ILoggerProvider
	cron           providers.ICronProvider
	devices        []*providers.RawDevice
	fanOut         providers.IInternalFanOutProvider
	registry       providers.IRegistryProvider
	executor       providers.IExecutorProvider
	masterSettings *providers.MasterSettings
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) NodeID() string {
	return "lockhub-tests"
}

func (f *fakeSettings) Cron() providers.ICronProvider {
	return f.cron
}

func (f *fakeSettings) Validator() providers.IValidatorProvider {
	return FakeNewValidator(true)
}

func (f *fakeSettings) Executor() providers.IExecutorProvider {
	if nil != f.executor {
		return f.executor
	}

	return FakeNewExecutor()
}

func (f *fakeSettings) Registry() providers.IRegistryProvider {
	if nil != f.registry {
		return f.registry
	}

	return FakeNewRegistry(nil)
}

func (f *fakeSettings) FanOut() providers.IInternalFanOutProvider {
	return f.fanOut
}

func (f *fakeSettings) Secrets() common.ISecretProvider {
	return FakeNewSecretStore(nil, true)
}

func (f *fakeSettings) MasterSettings() *providers.MasterSettings {
	if nil != f.masterSettings {
		return f.masterSettings
	}

	return &providers.MasterSettings{
		Port:            9999,
		DelayedStart:    1,
		ExecutorWorkers: 2,
	}
}

func (f *fakeSettings) DevicesConfig() []*providers.RawDevice {
	return f.devices
}

func (f *fakeSettings) AddMasterSettings(settings *providers.MasterSettings) {
	f.masterSettings = settings
}

func (f *fakeSettings) AddDevices(devices []*providers.RawDevice) {
	f.devices = devices
}

func (f *fakeSettings) AddRegistry(registry providers.IRegistryProvider) {
	f.registry = registry
}

func (f *fakeSettings) AddExecutor(executor providers.IExecutorProvider) {
	f.executor = executor
}

func (f *fakeSettings) AddFanOut(fanOut providers.IInternalFanOutProvider) {
	f.fanOut = fanOut
}

// FakeNewSettings creates a fake settings provider.
func FakeNewSettings(logger common.ILoggerProvider) *fakeSettings {
	if nil == logger {
		logger = FakeNewLogger(nil)
	}

	return &fakeSettings{
		logger:  logger,
		cron:    FakeNewCron(),
		devices: make([]*providers.RawDevice, 0),
		fanOut:  FakeNewFanOut(),
	}
}
