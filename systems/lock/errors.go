package lock

import "fmt"

// ErrInvalidCode defines access code validation error.
type ErrInvalidCode struct {
	DeviceID string
	Code     string
	Pattern  string
}

// Error formats output.
func (e *ErrInvalidCode) Error() string {
	return fmt.Sprintf("code '%s' for %s doesn't match pattern %s", e.Code, e.DeviceID, e.Pattern)
}

// ErrUnsupportedCommand defines a command which device didn't advertise.
type ErrUnsupportedCommand struct {
	Command string
}

// Error formats output.
func (e *ErrUnsupportedCommand) Error() string {
	return fmt.Sprintf("command %s is not supported", e.Command)
}

// ErrFeatureNotSupported defines a command gated by a feature flag
// which device doesn't advertise.
type ErrFeatureNotSupported struct {
	Command string
}

// Error formats output.
func (e *ErrFeatureNotSupported) Error() string {
	return fmt.Sprintf("command %s requires a feature the device doesn't support", e.Command)
}
