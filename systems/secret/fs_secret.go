// Package secret contains secrets stores.
package secret

import (
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Config logs system value.
	logSystem = "secret"
	// Secrets file name.
	secretsFileName = "_secrets.yaml"
)

// File system-backed secrets store.
type fsSecret struct {
	sync.Mutex

	location string
	logger   common.ILoggerProvider

	secrets map[string]string
}

// ConstructSecret has data required for a new secrets provider.
type ConstructSecret struct {
	Logger   common.ILoggerProvider
	Location string
}

// NewSecretProvider constructs a new file system-backed secrets store.
func NewSecretProvider(ctor *ConstructSecret) common.ISecretProvider {
	s := &fsSecret{
		location: fmt.Sprintf("%s/%s", ctor.Location, secretsFileName),
		logger:   ctor.Logger,
		secrets:  make(map[string]string),
	}

	s.load()
	return s
}

// Get returns a secret value or throws an error if it wasn't found.
func (s *fsSecret) Get(name string) (string, error) {
	s.Lock()
	defer s.Unlock()

	value, ok := s.secrets[name]
	if !ok {
		s.logger.Warn("Can't find requested secret", common.LogSystemToken, logSystem,
			common.LogFieldToken, name)
		return "", &ErrSecretNotFound{Name: name}
	}

	return value, nil
}

// Set updates a secret and persists the store.
func (s *fsSecret) Set(name string, data string) error {
	s.Lock()
	defer s.Unlock()

	s.secrets[name] = data
	return s.persist()
}

// Loads secrets from the disk. Missing file is not an error,
// the store starts empty.
func (s *fsSecret) load() {
	data, err := ioutil.ReadFile(s.location)
	if err != nil {
		s.logger.Debug("Secrets file is not found, starting empty", common.LogSystemToken, logSystem)
		return
	}

	if err := yaml.Unmarshal(data, &s.secrets); err != nil {
		s.logger.Error("Failed to parse secrets file", err, common.LogSystemToken, logSystem)
		s.secrets = make(map[string]string)
	}
}

// Writes secrets to the disk.
func (s *fsSecret) persist() error {
	data, err := yaml.Marshal(s.secrets)
	if err != nil {
		return errors.Wrap(err, "yaml marshal failed")
	}

	err = ioutil.WriteFile(s.location, data, 0600)
	if err != nil {
		s.logger.Error("Failed to write secrets file", err, common.LogSystemToken, logSystem)
		return errors.Wrap(err, "file write failed")
	}

	return nil
}
