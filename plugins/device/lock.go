package device

import (
	"github.com/lockhub-io/server/plugins/common"
)

// ILock defines lock integration interface.
// Integrations must implement the commands they advertise through
// Spec; invoking anything else fails with a not-supported error
// before the integration is ever called.
type ILock interface {
	IDevice
	Load() (*LockState, error)
	Update() (*LockState, error)
	Lock(common.LockRequest) error
	Unlock(common.LockRequest) error
	Open(common.LockRequest) error
}

// LockState returns information about known lock.
// The four signal booleans are tri-state: nil means the device
// did not report the signal at all.
type LockState struct {
	IsLocked    *bool  `json:"is_locked,omitempty"`
	IsLocking   *bool  `json:"is_locking,omitempty"`
	IsUnlocking *bool  `json:"is_unlocking,omitempty"`
	IsJammed    *bool  `json:"is_jammed,omitempty"`

	ChangedBy  string `json:"changed_by,omitempty"`
	CodeFormat string `json:"code_format,omitempty"`
}
