package integrations

import "fmt"

// ErrUnknownIntegration defines an unknown integration error.
type ErrUnknownIntegration struct {
	Integration string
}

// Error formats output.
func (e *ErrUnknownIntegration) Error() string {
	return fmt.Sprintf("unknown integration %s", e.Integration)
}

// ErrInvalidConfig defines an invalid integration config error.
type ErrInvalidConfig struct {
}

// Error formats output.
func (*ErrInvalidConfig) Error() string {
	return "invalid integration config"
}
