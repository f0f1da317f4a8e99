package settings

import (
	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/systems"
	"github.com/lockhub-io/server/systems/logger"
)

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	nodeID    string
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	secrets   common.ISecretProvider
	registry  providers.IRegistryProvider
	executor  providers.IExecutorProvider
	fanOut    providers.IInternalFanOutProvider

	mSettings *providers.MasterSettings

	devicesConfig []*providers.RawDevice
}

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger for a specific integration provider.
func (s *settingsProvider) PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system.String(),
		Provider:     provider,
	})
}

// NodeID returns current instance node ID.
func (s *settingsProvider) NodeID() string {
	return s.nodeID
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// Executor returns the shared device command executor.
func (s *settingsProvider) Executor() providers.IExecutorProvider {
	return s.executor
}

// Registry returns device options registry.
func (s *settingsProvider) Registry() providers.IRegistryProvider {
	return s.registry
}

// FanOut returns fan out channel.
func (s *settingsProvider) FanOut() providers.IInternalFanOutProvider {
	return s.fanOut
}

// Secrets returns secrets store.
func (s *settingsProvider) Secrets() common.ISecretProvider {
	return s.secrets
}

// MasterSettings returns hub settings.
func (s *settingsProvider) MasterSettings() *providers.MasterSettings {
	return s.mSettings
}

// DevicesConfig returns raw devices configs.
func (s *settingsProvider) DevicesConfig() []*providers.RawDevice {
	return s.devicesConfig
}
