//go:generate enumer -type=LockStatus -transform=kebab -trimprefix=Status -json -text -yaml

package enums

// LockStatus describes enum with possible lock states.
type LockStatus int

const (
	// StatusUnknown describes a lock which did not report a steady state.
	StatusUnknown LockStatus = iota
	// StatusLocked describes a locked lock.
	StatusLocked
	// StatusUnlocked describes an unlocked lock.
	StatusUnlocked
	// StatusLocking describes a lock in transition to locked.
	StatusLocking
	// StatusUnlocking describes a lock in transition to unlocked.
	StatusUnlocking
	// StatusJammed describes a lock which failed mid-transition.
	StatusJammed
)
