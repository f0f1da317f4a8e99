package virtual

import (
	"testing"
	"time"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/plugins/device"
	"github.com/lockhub-io/server/plugins/device/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVirtualLock(t *testing.T, settings *Settings) (*VirtualLock, chan *device.StateUpdateData) {
	updates := make(chan *device.StateUpdateData, 10)
	lock := &VirtualLock{Settings: settings}
	require.NoError(t, lock.Init(&device.InitDataDevice{DeviceStateUpdateChan: updates}))
	return lock, updates
}

func isLocked(state *device.LockState) bool {
	return nil != state.IsLocked && *state.IsLocked
}

// Tests spec advertising depending on open support.
func TestSpec(t *testing.T) {
	lock, _ := newVirtualLock(t, &Settings{PollingInterval: 15})
	spec := lock.GetSpec()
	assert.NotContains(t, spec.SupportedCommands, enums.CmdOpen, "no open command")
	assert.Equal(t, enums.LockFeature(0), spec.SupportedFeatures, "no features")
	assert.Equal(t, 15*time.Second, spec.UpdatePeriod, "update period")

	lock, _ = newVirtualLock(t, &Settings{SupportsOpen: true})
	spec = lock.GetSpec()
	assert.Contains(t, spec.SupportedCommands, enums.CmdOpen, "open command")
	assert.True(t, enums.CmdOpen.IsFeatureSupported(spec.SupportedFeatures), "open feature")
}

// Tests initial load state.
func TestLoad(t *testing.T) {
	lock, _ := newVirtualLock(t, &Settings{CodeFormat: `^\d{4}$`})
	state, err := lock.Load()
	require.NoError(t, err)
	assert.True(t, isLocked(state), "locked at start")
	assert.Equal(t, `^\d{4}$`, state.CodeFormat, "code format")

	lock, _ = newVirtualLock(t, &Settings{UnlockedAtStart: true})
	state, err = lock.Load()
	require.NoError(t, err)
	assert.False(t, isLocked(state), "unlocked at start")
}

// Tests immediate lock and unlock transitions.
func TestLockUnlock(t *testing.T) {
	lock, updates := newVirtualLock(t, &Settings{UnlockedAtStart: true})
	_, err := lock.Load()
	require.NoError(t, err)

	require.NoError(t, lock.Lock(common.LockRequest{Code: "1234"}))
	update := <-updates
	state := update.State.(*device.LockState)
	assert.True(t, isLocked(state), "locked")
	assert.Equal(t, "code", state.ChangedBy, "changed by code")

	require.NoError(t, lock.Unlock(common.LockRequest{}))
	update = <-updates
	state = update.State.(*device.LockState)
	assert.False(t, isLocked(state), "unlocked")
	assert.Equal(t, "api", state.ChangedBy, "changed by api")
}

// Tests open gating and behavior.
func TestOpen(t *testing.T) {
	lock, _ := newVirtualLock(t, &Settings{})
	_, err := lock.Load()
	require.NoError(t, err)
	assert.IsType(t, &ErrOpenNotSupported{}, lock.Open(common.LockRequest{}), "open disabled")

	lock, updates := newVirtualLock(t, &Settings{SupportsOpen: true})
	_, err = lock.Load()
	require.NoError(t, err)
	require.NoError(t, lock.Open(common.LockRequest{}))
	update := <-updates
	assert.False(t, isLocked(update.State.(*device.LockState)), "open unlatches")
}

// Tests delayed transitions going through an intermediate state.
func TestDelayedTransition(t *testing.T) {
	lock, updates := newVirtualLock(t, &Settings{UnlockedAtStart: true, TransitionTime: 1})
	_, err := lock.Load()
	require.NoError(t, err)

	require.NoError(t, lock.Lock(common.LockRequest{}))
	update := <-updates
	state := update.State.(*device.LockState)
	require.NotNil(t, state.IsLocking, "locking signal")
	assert.True(t, *state.IsLocking, "locking")
	assert.False(t, isLocked(state), "not locked yet")

	select {
	case update = <-updates:
	case <-time.After(3 * time.Second):
		t.Fatal("transition never completed")
	}

	state = update.State.(*device.LockState)
	assert.Nil(t, state.IsLocking, "locking cleared")
	assert.True(t, isLocked(state), "locked")
}

// Tests jam simulation.
func TestJam(t *testing.T) {
	lock, updates := newVirtualLock(t, &Settings{JamEvery: 2})
	_, err := lock.Load()
	require.NoError(t, err)

	require.NoError(t, lock.Unlock(common.LockRequest{}))
	<-updates

	require.NoError(t, lock.Lock(common.LockRequest{}))
	update := <-updates
	state := update.State.(*device.LockState)
	require.NotNil(t, state.IsJammed, "jam signal")
	assert.True(t, *state.IsJammed, "jammed")
}
