package registry

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/lockhub-io/server/mocks"
	"github.com/lockhub-io/server/providers"
	"github.com/stretchr/testify/assert"
)

// Tests options round-trip through the registry file.
func TestPersistAndReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "registry")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	reg := NewRegistry(&ConstructRegistry{Logger: mocks.FakeNewLogger(nil), Location: dir})
	assert.Nil(t, reg.LockOptions("lock.virtual.front_door"), "empty registry")

	err = reg.SetLockOptions("lock.virtual.front_door", &providers.LockOptions{DefaultCode: "1234"})
	assert.NoError(t, err)

	reloaded := NewRegistry(&ConstructRegistry{Logger: mocks.FakeNewLogger(nil), Location: dir})
	opts := reloaded.LockOptions("lock.virtual.front_door")
	assert.NotNil(t, opts, "reloaded options")
	assert.Equal(t, "1234", opts.DefaultCode, "default code")
}

// Tests subscriber notifications on update.
func TestSubscriptions(t *testing.T) {
	reg := NewRegistry(&ConstructRegistry{Logger: mocks.FakeNewLogger(nil)})

	var received *providers.LockOptions
	otherCalled := false

	id := reg.Subscribe("lock.virtual.front_door", func(opts *providers.LockOptions) {
		received = opts
	})
	reg.Subscribe("lock.virtual.back_door", func(opts *providers.LockOptions) {
		otherCalled = true
	})

	err := reg.SetLockOptions("lock.virtual.front_door", &providers.LockOptions{DefaultCode: "4321"})
	assert.NoError(t, err)
	assert.NotNil(t, received, "subscriber notified")
	assert.Equal(t, "4321", received.DefaultCode, "received code")
	assert.False(t, otherCalled, "other device subscriber untouched")

	received = nil
	reg.Unsubscribe(id)
	err = reg.SetLockOptions("lock.virtual.front_door", &providers.LockOptions{DefaultCode: "0000"})
	assert.NoError(t, err)
	assert.Nil(t, received, "unsubscribed")
}

// Tests that a broken registry file is ignored.
func TestBrokenFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "registry")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(filepath.Join(dir, registryFileName), []byte("not: [valid"), 0600)
	assert.NoError(t, err)

	reg := NewRegistry(&ConstructRegistry{Logger: mocks.FakeNewLogger(nil), Location: dir})
	assert.Nil(t, reg.LockOptions("any"))
}
