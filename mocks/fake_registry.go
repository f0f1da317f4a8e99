//+build !release

package mocks

import "github.com/lockhub-io/server/providers"

type fakeRegistry struct {
	options   map[string]*providers.LockOptions
	callbacks map[int64]func(*providers.LockOptions)
	deviceIDs map[int64]string
	nextID    int64
}

func (f *fakeRegistry) LockOptions(deviceID string) *providers.LockOptions {
	return f.options[deviceID]
}

func (f *fakeRegistry) SetLockOptions(deviceID string, options *providers.LockOptions) error {
	f.options[deviceID] = options
	for id, cb := range f.callbacks {
		if f.deviceIDs[id] == deviceID {
			cb(options)
		}
	}

	return nil
}

func (f *fakeRegistry) Subscribe(deviceID string, cb func(*providers.LockOptions)) int64 {
	f.nextID++
	f.callbacks[f.nextID] = cb
	f.deviceIDs[f.nextID] = deviceID
	return f.nextID
}

func (f *fakeRegistry) Unsubscribe(id int64) {
	delete(f.callbacks, id)
	delete(f.deviceIDs, id)
}

// FakeNewRegistry creates a fake options registry provider.
func FakeNewRegistry(options map[string]*providers.LockOptions) *fakeRegistry {
	if nil == options {
		options = make(map[string]*providers.LockOptions)
	}

	return &fakeRegistry{
		options:   options,
		callbacks: make(map[int64]func(*providers.LockOptions)),
		deviceIDs: make(map[int64]string),
	}
}
