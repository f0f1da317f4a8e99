// Package registry contains per-device persisted options.
// Options are stored in a single yaml file under a domain-specific
// key per device, cached in memory and pushed to subscribers on
// every update.
package registry

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "registry"
	// Registry file name inside the configured location.
	registryFileName = "registry.yaml"
	// Domain key under which lock options are persisted.
	lockDomainKey = "lock"
)

// Per-device options, keyed by domain.
type deviceOptions map[string]*providers.LockOptions

// Registry implementation.
type provider struct {
	sync.Mutex

	logger   common.ILoggerProvider
	location string
	options  *cache.Cache

	callbacks map[int64]*subscription
	nextID    int64
}

// Single options subscription.
type subscription struct {
	deviceID string
	callback func(*providers.LockOptions)
}

// ConstructRegistry has data required for a new registry provider.
type ConstructRegistry struct {
	Logger   common.ILoggerProvider
	Location string
}

// NewRegistry constructs a new options registry.
// A missing or broken registry file is not an error: devices simply
// start without persisted options.
func NewRegistry(ctor *ConstructRegistry) providers.IRegistryProvider {
	p := &provider{
		logger:    ctor.Logger,
		location:  ctor.Location,
		options:   cache.New(cache.NoExpiration, cache.NoExpiration),
		callbacks: make(map[int64]*subscription),
	}

	p.load()
	return p
}

// LockOptions returns persisted lock options for the device or nil.
func (p *provider) LockOptions(deviceID string) *providers.LockOptions {
	if opts, ok := p.options.Get(deviceID); ok {
		return opts.(deviceOptions)[lockDomainKey]
	}

	return nil
}

// SetLockOptions persists new lock options for the device and
// notifies its subscribers.
func (p *provider) SetLockOptions(deviceID string, options *providers.LockOptions) error {
	p.Lock()
	defer p.Unlock()

	opts := deviceOptions{lockDomainKey: options}
	p.options.Set(deviceID, opts, cache.NoExpiration)

	if err := p.persist(); err != nil {
		return errors.Wrap(err, "registry persist failed")
	}

	for _, v := range p.callbacks {
		if v.deviceID == deviceID {
			v.callback(options)
		}
	}

	return nil
}

// Subscribe registers a callback fired on every options update for the device.
func (p *provider) Subscribe(deviceID string, cb func(*providers.LockOptions)) int64 {
	p.Lock()
	defer p.Unlock()

	p.nextID++
	p.callbacks[p.nextID] = &subscription{deviceID: deviceID, callback: cb}
	return p.nextID
}

// Unsubscribe removes a previously registered callback.
func (p *provider) Unsubscribe(id int64) {
	p.Lock()
	defer p.Unlock()

	delete(p.callbacks, id)
}

// Loads registry file from disk.
func (p *provider) load() {
	if "" == p.location {
		return
	}

	data, err := ioutil.ReadFile(p.fileName())
	if err != nil {
		if !os.IsNotExist(err) {
			p.logger.Warn("Failed to read registry file", common.LogSystemToken, logSystem,
				common.LogFieldToken, p.fileName())
		}
		return
	}

	stored := make(map[string]deviceOptions)
	if err := yaml.Unmarshal(data, &stored); err != nil {
		p.logger.Error("Failed to parse registry file, ignoring it", err,
			common.LogSystemToken, logSystem)
		return
	}

	for k, v := range stored {
		p.options.Set(k, v, cache.NoExpiration)
	}
}

// Persists registry to disk. No-op when no location is configured.
func (p *provider) persist() error {
	if "" == p.location {
		return nil
	}

	stored := make(map[string]deviceOptions)
	for k, v := range p.options.Items() {
		stored[k] = v.Object.(deviceOptions)
	}

	data, err := yaml.Marshal(stored)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(p.fileName(), data, 0600)
}

// Full registry file path.
func (p *provider) fileName() string {
	return filepath.Join(p.location, registryFileName)
}
