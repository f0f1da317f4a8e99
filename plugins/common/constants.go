package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogDeviceTypeToken describes device type log entry.
	LogDeviceTypeToken = "device_type"
	// LogDeviceNameToken describes device name log entry.
	LogDeviceNameToken = "device_name"
	// LogDeviceCommandToken describes device command log entry.
	LogDeviceCommandToken = "device_cmd"
	// LogIntegrationToken describes integration name log entry.
	LogIntegrationToken = "integration"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
)

const (
	// LogNodeToken describes node log entry.
	LogNodeToken = "node"
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
)
