// Package common contains shared data available for all device integrations.
package common

// LockRequest defines parameters passed to every lock operation.
// Code is populated by the command pre-processing pipeline and is
// omitted when no access code is in effect.
type LockRequest struct {
	Code string `json:"code,omitempty"`
}
