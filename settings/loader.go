// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/lockhub-io/server/providers"
	"github.com/lockhub-io/server/systems"
	"github.com/lockhub-io/server/systems/executor"
	"github.com/lockhub-io/server/systems/fanout"
	"github.com/lockhub-io/server/systems/logger"
	"github.com/lockhub-io/server/systems/registry"
	"github.com/lockhub-io/server/systems/secret"
	"github.com/lockhub-io/server/utils"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
)

const (
	// Describes config record for the hub node.
	configHubMaster = "master"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	ConfigFolder string `short:"c" long:"config" description:"Config files location. Defaults to ./configs."`
}

// Defines a loaded provider record.
type rawProvider struct {
	System   string
	Provider string
	Config   []byte
}

// Device selector fields shared by all device configs.
type rawDeviceSelector struct {
	Name string `yaml:"name"`
}

// Load system configuration.
func Load(options *StartUpOptions) providers.ISettingsProvider {
	settings := settingsProvider{
		logger:        logger.NewConsoleLogger(),
		devicesConfig: make([]*providers.RawDevice, 0),
		fanOut:        fanout.NewFanOut(),
	}

	settings.validator = utils.NewValidator(settings.logger)

	location := options.ConfigFolder
	if "" == location {
		location = utils.GetDefaultConfigsDir()
	}

	settings.secrets = secret.NewSecretProvider(&secret.ConstructSecret{
		Logger:   settings.logger,
		Location: location,
	})

	hostname, err := os.Hostname()
	if err != nil || "" == hostname {
		hostname = "lockhub"
	}
	settings.nodeID = utils.NormalizeDeviceName(hostname)

	allProviders := make([]*rawProvider, 0)
	for _, fileData := range settings.readConfigFiles(location) {
		allProviders = append(allProviders, settings.loadFile(fileData)...)
	}

	for _, v := range allProviders {
		settings.parseProvider(v)
	}

	settings.finalize(location)
	return &settings
}

// Reads all config files from the folder.
// Files with a leading underscore are internal stores and are skipped.
func (s *settingsProvider) readConfigFiles(location string) [][]byte {
	files, err := ioutil.ReadDir(location)
	if err != nil {
		s.logger.Fatal("Failed to read config files", err, common.LogSystemToken, logSystem)
		return nil
	}

	result := make([][]byte, 0)
	for _, f := range files {
		if f.IsDir() || strings.HasPrefix(f.Name(), "_") ||
			(!strings.HasSuffix(f.Name(), ".yaml") && !strings.HasSuffix(f.Name(), ".yml")) {
			continue
		}

		data, err := ioutil.ReadFile(fmt.Sprintf("%s/%s", location, f.Name()))
		if err != nil {
			s.logger.Error("Failed to read config file", err, common.LogSystemToken, logSystem,
				common.LogFieldToken, f.Name())
			continue
		}

		result = append(result, data)
	}

	return result
}

// Processes a single yaml file which may contain multiple documents.
func (s *settingsProvider) loadFile(fileData []byte) []*rawProvider {
	provs := make([]*rawProvider, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		var value map[string]interface{}
		err := decoder.Decode(&value)
		if io.EOF == err {
			break
		}

		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, logSystem)
			continue
		}

		componentType := ""
		componentProvider := ""

		if cs, ok := value["system"].(string); ok {
			componentType = strings.ToLower(cs)
		}

		if ct, ok := value["provider"].(string); ok {
			componentProvider = strings.ToLower(ct)
		}

		if "" == componentType || "" == componentProvider {
			s.logger.Warn("Failed to parse a record in the config file: system or provider is not defined",
				common.LogSystemToken, logSystem)
			continue
		}

		byteData, err := yaml.Marshal(value)
		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, componentType,
				common.LogProviderToken, componentProvider)
			continue
		}

		provs = append(provs, &rawProvider{
			Provider: componentProvider,
			System:   componentType,
			Config:   byteData,
		})
	}

	return provs
}

// Routes a single config record to its loader.
func (s *settingsProvider) parseProvider(provider *rawProvider) {
	sys, err := systems.SystemTypeString(provider.System)
	if err != nil {
		s.logger.Warn("Ignoring record of an unknown system", common.LogSystemToken, logSystem,
			common.LogProviderToken, provider.Provider, "record_system", provider.System)
		return
	}

	switch sys {
	case systems.SysHub:
		s.loadHubDefinition(provider)
	case systems.SysDevice:
		s.loadDeviceProvider(provider)
	default:
		s.logger.Warn("Ignoring un-supported system record", common.LogSystemToken, logSystem,
			common.LogProviderToken, provider.Provider, "record_system", provider.System)
	}
}

// Loads hub node configuration.
func (s *settingsProvider) loadHubDefinition(provider *rawProvider) {
	if configHubMaster != provider.Provider {
		s.logger.Warn("Ignoring unknown hub record", common.LogSystemToken, logSystem,
			common.LogProviderToken, provider.Provider)
		return
	}

	set := &providers.MasterSettings{}
	if err := yaml.Unmarshal(provider.Config, set); err != nil {
		panic("Failed to unmarshal hub config")
	}

	if !s.validator.Validate(set) {
		panic("Incorrect hub settings")
	}

	s.mSettings = set
}

// Loads a single device record.
func (s *settingsProvider) loadDeviceProvider(provider *rawProvider) {
	deviceType := utils.VerifyDeviceProvider(provider.Provider)
	if enums.DevUnknown == deviceType {
		s.logger.Warn("Ignoring device since type is unknown", common.LogDeviceTypeToken, provider.Provider,
			common.LogSystemToken, logSystem)
		return
	}

	selector := rawDeviceSelector{}
	if err := yaml.Unmarshal(provider.Config, &selector); err != nil {
		s.logger.Error("Failed to parse device record", err, common.LogDeviceTypeToken, provider.Provider,
			common.LogSystemToken, logSystem)
		return
	}

	if "" == selector.Name {
		s.logger.Warn("Ignoring device without a name", common.LogDeviceTypeToken, provider.Provider,
			common.LogSystemToken, logSystem)
		return
	}

	selector.Name = strings.ToLower(selector.Name)
	for _, e := range s.devicesConfig {
		if e.Name == selector.Name {
			s.logger.Warn("Ignoring device since name is duplicated", common.LogDeviceTypeToken, provider.Provider,
				common.LogSystemToken, logSystem, common.LogDeviceNameToken, selector.Name)
			return
		}
	}

	integration := strings.SplitN(provider.Provider, "/", 2)[1]

	s.devicesConfig = append(s.devicesConfig, &providers.RawDevice{
		Integration: integration,
		DeviceType:  deviceType,
		StrConfig:   string(provider.Config),
		Name:        selector.Name,
	})
}

// Constructs remaining providers once configs are parsed.
func (s *settingsProvider) finalize(location string) {
	if nil == s.mSettings {
		s.logger.Warn("Hub settings are not defined, using the default ones",
			common.LogSystemToken, logSystem)
		s.mSettings = &providers.MasterSettings{}
		if !s.validator.Validate(s.mSettings) {
			panic("Failed to construct default hub settings")
		}
	}

	if "" == s.mSettings.RegistryLocation {
		s.mSettings.RegistryLocation = location
	}

	s.cron = utils.NewCron()
	_, err := s.cron.AddFunc("@every 10s", func() {
		s.logger.Flush()
	})

	if err != nil {
		panic("Failed to register logger flushing")
	}

	s.registry = registry.NewRegistry(&registry.ConstructRegistry{
		Logger:   s.logger,
		Location: s.mSettings.RegistryLocation,
	})

	s.executor = executor.NewExecutor(&executor.ConstructExecutor{
		Logger:  s.logger,
		Workers: s.mSettings.ExecutorWorkers,
	})
}
