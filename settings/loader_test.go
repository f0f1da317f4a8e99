package settings

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
system: hub
provider: master
port: 8899
executorWorkers: 8
---
system: device
provider: lock/virtual
name: Hallway
codeFormat: '^\d{4}$'
---
system: device
provider: lock/virtual
name: hallway
---
system: device
provider: dishwasher/virtual
name: kitchen
---
system: device
provider: lock/virtual
---
system: warp-drive
provider: acme
`

// Tests parsing a multi-document config file.
func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "settings")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	err = ioutil.WriteFile(fmt.Sprintf("%s/config.yaml", dir), []byte(testConfig), 0600)
	require.NoError(t, err)

	s := Load(&StartUpOptions{ConfigFolder: dir})
	defer s.Executor().Stop()

	require.NotNil(t, s.MasterSettings())
	assert.Equal(t, 8899, s.MasterSettings().Port, "port")
	assert.Equal(t, 8, s.MasterSettings().ExecutorWorkers, "workers")
	assert.Equal(t, dir, s.MasterSettings().RegistryLocation, "registry location defaults to configs")

	devices := s.DevicesConfig()
	require.Len(t, devices, 1, "one valid device")
	assert.Equal(t, "virtual", devices[0].Integration, "integration")
	assert.Equal(t, "hallway", devices[0].Name, "lower-cased name")

	assert.NotNil(t, s.SystemLogger(), "logger")
	assert.NotNil(t, s.Cron(), "cron")
	assert.NotNil(t, s.Validator(), "validator")
	assert.NotNil(t, s.Registry(), "registry")
	assert.NotNil(t, s.FanOut(), "fan out")
	assert.NotNil(t, s.Secrets(), "secrets")
	assert.NotEqual(t, "", s.NodeID(), "node id")
}

// Tests defaults applied when hub record is missing.
func TestLoadDefaults(t *testing.T) {
	dir, err := ioutil.TempDir("", "settings")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	err = ioutil.WriteFile(fmt.Sprintf("%s/empty.yaml", dir), []byte(""), 0600)
	require.NoError(t, err)

	s := Load(&StartUpOptions{ConfigFolder: dir})
	defer s.Executor().Stop()

	require.NotNil(t, s.MasterSettings())
	assert.Equal(t, 8000, s.MasterSettings().Port, "default port")
	assert.Equal(t, 4, s.MasterSettings().ExecutorWorkers, "default workers")
	assert.Empty(t, s.DevicesConfig(), "no devices")
}
