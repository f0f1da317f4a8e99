package virtual

// ErrOpenNotSupported defines an error when open is not enabled.
type ErrOpenNotSupported struct {
}

// Error formats output.
func (*ErrOpenNotSupported) Error() string {
	return "open is not supported by this lock"
}
