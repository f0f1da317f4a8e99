//go:generate enumer -type=SystemType -transform=kebab -trimprefix=Sys

package systems

// SystemType is an enum describing known system types.
type SystemType int

const (
	// SysHub describes the hub server system.
	SysHub SystemType = iota
	// SysLogger describes logger system.
	SysLogger
	// SysDevice describes device system.
	SysDevice
	// SysRegistry describes entity options registry system.
	SysRegistry
	// SysExecutor describes blocking operations executor system.
	SysExecutor
)
