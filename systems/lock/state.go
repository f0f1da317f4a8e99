// Package lock contains lock device wrapper implementation.
package lock

import (
	"github.com/lockhub-io/server/plugins/device"
	"github.com/lockhub-io/server/plugins/device/enums"
)

// DetermineStatus derives the canonical lock status from raw device signals.
// Transient states win over the steady locked/unlocked signal since a
// device may report both during a transition. The evaluation order is
// part of the contract: jammed, locking, unlocking, then locked/unlocked.
func DetermineStatus(state *device.LockState) enums.LockStatus {
	if nil == state {
		return enums.StatusUnknown
	}

	if isTrue(state.IsJammed) {
		return enums.StatusJammed
	}

	if isTrue(state.IsLocking) {
		return enums.StatusLocking
	}

	if isTrue(state.IsUnlocking) {
		return enums.StatusUnlocking
	}

	if nil == state.IsLocked {
		return enums.StatusUnknown
	}

	if *state.IsLocked {
		return enums.StatusLocked
	}

	return enums.StatusUnlocked
}

// Tri-state helper: nil means unknown and is not true.
func isTrue(signal *bool) bool {
	return nil != signal && *signal
}
