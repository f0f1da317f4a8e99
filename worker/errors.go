package worker

import "fmt"

// ErrUnknownDevice defines an unknown device error.
type ErrUnknownDevice struct {
	DeviceID string
}

// Error formats output.
func (e *ErrUnknownDevice) Error() string {
	return fmt.Sprintf("unknown device %s", e.DeviceID)
}
