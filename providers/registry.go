package providers

// LockOptions defines per-device persisted options.
type LockOptions struct {
	DefaultCode string `yaml:"defaultCode" json:"default_code"`
}

// IRegistryProvider defines per-device options registry logic.
// Subscribers are notified on every options update for their device;
// notifications run on the host loop, never concurrently per device.
type IRegistryProvider interface {
	LockOptions(deviceID string) *LockOptions
	SetLockOptions(deviceID string, options *LockOptions) error
	Subscribe(deviceID string, cb func(*LockOptions)) int64
	Unsubscribe(id int64)
}
