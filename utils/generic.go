package utils

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lockhub-io/server/plugins/device/enums"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// VerifyDeviceProvider transforms device provider from yaml config into actual type.
// Config uses "type/integration" notation, e.g. "lock/virtual".
func VerifyDeviceProvider(configType string) enums.DeviceType {
	parts := strings.SplitN(configType, "/", 2)
	if len(parts) < 2 {
		return enums.DevUnknown
	}

	t, err := enums.DeviceTypeString(parts[0])
	if err != nil {
		return enums.DevUnknown
	}

	return t
}

// NormalizeDeviceName validates that final device name is correct.
func NormalizeDeviceName(raw string) string {
	raw = strings.ToLower(raw)
	replacer := strings.NewReplacer("%", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		";", "_",
		".", "_",
		"$", "_",
		"-", "_",
		" ", "_")
	return replacer.Replace(raw)
}

// GetCurrentWorkingDir returns application working directory.
func GetCurrentWorkingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return cwd
}

// GetDefaultConfigsDir returns default config files location.
func GetDefaultConfigsDir() string {
	return filepath.Join(GetCurrentWorkingDir(), "configs")
}
