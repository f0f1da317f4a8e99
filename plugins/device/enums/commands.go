//go:generate enumer -type=Command -transform=kebab -trimprefix=Cmd -json -text -yaml

// Package enums contains various enumerations and rules for device integrations.
package enums

// Command describes enum with known device commands.
type Command int

const (
	// CmdLock describes locking command.
	CmdLock Command = iota
	// CmdUnlock describes unlocking command.
	CmdUnlock
	// CmdOpen describes opening the latch command.
	CmdOpen
)

// AllowedCommands contains set of all possible allowed commands per device type.
var AllowedCommands = map[DeviceType][]Command{
	DevLock: {CmdLock, CmdUnlock, CmdOpen},
}

// RequiredFeatures contains commands which are allowed only when
// device advertises a corresponding feature flag.
var RequiredFeatures = map[Command]LockFeature{
	CmdOpen: FeatureOpen,
}

// SliceContainsCommand checks whether slice contains certain command.
func SliceContainsCommand(s []Command, e Command) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

// IsCommandAllowed checks whether command is allowed for this device type.
func (i Command) IsCommandAllowed(deviceType DeviceType) bool {
	slice, ok := AllowedCommands[deviceType]
	if !ok {
		return false
	}

	return SliceContainsCommand(slice, i)
}

// IsFeatureSupported checks whether features required by the command
// are advertised by the device.
func (i Command) IsFeatureSupported(features LockFeature) bool {
	required, ok := RequiredFeatures[i]
	if !ok {
		return true
	}

	return features.HasFlag(required)
}
